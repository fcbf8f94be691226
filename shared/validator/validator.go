package validator

import (
	"encoding/json"
	"fmt"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const bytesPerMB = 1024 * 1024

var validate *val.Validate

// Enum is implemented by closed string types such as booking or room status.
type Enum interface {
	IsValid() bool
}

var enumType = reflect.TypeFor[Enum]()

func validateEnum(fl val.FieldLevel) bool {
	field := fl.Field()

	if field.Type().Implements(enumType) {
		enum, _ := field.Interface().(Enum)

		return enum.IsValid()
	}

	if field.CanAddr() && field.Addr().Type().Implements(enumType) {
		enum, _ := field.Addr().Interface().(Enum)

		return enum.IsValid()
	}

	return false
}

// decimalValue lets numeric tags such as gte compare decimal amounts.
func decimalValue(field reflect.Value) any {
	amount, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}

	return amount.InexactFloat64()
}

func validateMimetype(fl val.FieldLevel) bool {
	file, ok := fl.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	return slices.Contains(strings.Fields(fl.Param()), file.Header.Get(constant.RequestHeaderContentType))
}

func validateFileSize(fl val.FieldLevel) bool {
	file, ok := fl.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(fl.Param(), 64)
	if err != nil {
		return false
	}

	return float64(file.Size) <= maxSizeMB*bytesPerMB
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	custom := map[string]val.Func{
		"enum":        validateEnum,
		"mimetypes":   validateMimetype,
		"maxfilesize": validateFileSize,
	}

	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate decodes a JSON body into data and validates it. Unknown fields are
// rejected so typos in camelCase names do not pass silently.
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

// ValidateID reports an id that is not a UUID as a missing entityName, since
// no row can be stored under it.
func ValidateID(id, entityName string) error {
	if err := validate.Var(id, "required,uuid"); err != nil {
		return failure.NotFound(entityName + " not found") //nolint:wrapcheck
	}

	return nil
}
