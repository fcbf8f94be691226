package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/timezone"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

var background sync.WaitGroup

// Detach runs fn in the background on a context that outlives the request.
func Detach(ctx context.Context, fn func(ctx context.Context)) {
	background.Add(1)

	go func() {
		defer background.Done()

		fn(context.WithoutCancel(ctx))
	}()
}

// Drain blocks until every call started with Detach has returned.
func Drain() {
	background.Wait()
}

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) int {
	if total == 0 || limit <= 0 {
		return 1
	}

	return int(math.Ceil(float64(total) / float64(limit)))
}

// TransformFields maps the non-zero, db-tagged fields of a patch struct to
// column updates and stamps the audit columns. Pointer fields are
// dereferenced, so a pointer to an empty string still clears a column.
func TransformFields(data any, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := val.Type()

	updated := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		column := typ.Field(index).Tag.Get("db")
		if column == "" || column == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			field = field.Elem()
		}

		updated[column] = field.Interface()
	}

	updated[constant.FieldModifiedAt] = timezone.Now()
	updated[constant.FieldModifiedBy] = username

	return updated
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// Actor returns the authenticated user id, or "system" for internal calls.
func Actor(ctx context.Context) string {
	if user, ok := ctx.Value(constant.ContextKeyUserID).(string); ok && user != "" {
		return user
	}

	return constant.System
}

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery keys a listing by its paging and a digest of its
// filters.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()
	digest := sha256.Sum256(fmt.Appendf(nil, "%s|%v", where, args))

	return BuildCacheKey(prefix,
		strconv.Itoa(params.Page),
		strconv.Itoa(params.Limit),
		params.SortBy,
		params.SortDir,
		hex.EncodeToString(digest[:8]),
	)
}

// InvalidateCaches drops every key under each prefix. Failures are logged
// only; a stale entry expires with its TTL.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+constant.Asterix); err != nil {
			log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
		}
	}
}
