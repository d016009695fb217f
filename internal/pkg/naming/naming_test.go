package naming_test

import (
	"testing"

	"atlantic-api/internal/pkg/naming"

	"github.com/stretchr/testify/assert"
)

func TestToSnake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "camelCase", in: "couponCode", want: "coupon_code"},
		{name: "multiple humps", in: "resumeFileName", want: "resume_file_name"},
		{name: "already snake", in: "payment_status", want: "payment_status"},
		{name: "single word", in: "email", want: "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, naming.ToSnake(tt.in))
		})
	}
}

func TestToCamel(t *testing.T) {
	assert.Equal(t, "couponCode", naming.ToCamel("coupon_code"))
	assert.Equal(t, "resumeFileName", naming.ToCamel("resume_file_name"))
	assert.Equal(t, "email", naming.ToCamel("email"))
}

func TestNormalize(t *testing.T) {
	record := map[string]interface{}{
		"couponCode":     "SAVE20",
		"payment_status": "paid",
		"name":           "Asha",
	}

	got := naming.Normalize(record)

	assert.Equal(t, map[string]interface{}{
		"coupon_code":    "SAVE20",
		"payment_status": "paid",
		"name":           "Asha",
	}, got)
}

func TestNormalizeSnakeWins(t *testing.T) {
	record := map[string]interface{}{
		"coupon_code": "FROMSNAKE",
		"couponCode":  "FROMCAMEL",
	}

	got := naming.Normalize(record)

	assert.Equal(t, "FROMSNAKE", got["coupon_code"])
	assert.Len(t, got, 1)
}

func TestDual(t *testing.T) {
	record := map[string]interface{}{
		"coupon_code": "SAVE20",
		"email":       "a@b.c",
	}

	got := naming.Dual(record)

	assert.Equal(t, "SAVE20", got["coupon_code"])
	assert.Equal(t, "SAVE20", got["couponCode"])
	// No second spelling for single-word keys.
	assert.Len(t, got, 3)
}

func TestFilterSnake(t *testing.T) {
	record := map[string]interface{}{
		"coupon_code": "SAVE20",
		"couponCode":  "SAVE20",
		"Name":        "Asha",
		"email":       "a@b.c",
	}

	got := naming.FilterSnake(record)

	assert.Equal(t, map[string]interface{}{
		"coupon_code": "SAVE20",
		"email":       "a@b.c",
	}, got)
}
