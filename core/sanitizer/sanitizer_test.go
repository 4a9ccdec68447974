package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meupdi/pdi/core/sanitizer"
)

func TestComposite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"email trims and lowercases", sanitizer.Email, "  Ana.Souza@Example.COM ", "ana.souza@example.com"},
		{"email drops inner spaces", sanitizer.Email, "ana @b.com", "ana@b.com"},
		{"nickname strips markup", sanitizer.Nickname, " <b>Ana</b>\n Souza ", "Ana Souza"},
		{"plan name single line", sanitizer.PlanName, "Q3\r\ngrowth\tplan", "Q3 growth plan"},
		{"message keeps line breaks", sanitizer.Message, "  first line\nsecond line\x00 ", "first line\nsecond line"},
		{"nickname composes accents", sanitizer.Nickname, "Jose\u0301", "Jos\u00e9"},
		{"normalize is idempotent", sanitizer.Normalize, "Jos\u00e9", "Jos\u00e9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.fn(tt.in))
		})
	}

	t.Run("limits", func(t *testing.T) {
		t.Parallel()
		assert.Len(t, []rune(sanitizer.PlanName(strings.Repeat("é", 500))), sanitizer.MaxPlanNameLength)
		assert.Len(t, []rune(sanitizer.Nickname(strings.Repeat("a", 500))), sanitizer.MaxNicknameLength)
		assert.Equal(t, "", sanitizer.MaxLength("abc", 0))
	})
}

func TestSanitizeStruct(t *testing.T) {
	t.Parallel()

	type Goal struct {
		Description string `sanitize:"single_line"`
	}
	type Input struct {
		Email    string  `sanitize:"email"`
		Nickname *string `sanitize:"nickname"`
		Password string  `sanitize:"-"`
		Raw      string
		Tags     []string `sanitize:"trim_lower,max:3"`
		Goal     Goal
		Extra    *Goal
		hidden   string `sanitize:"trim"`
	}

	nick := "  Ana  "
	in := Input{
		Email:    " A@B.COM ",
		Nickname: &nick,
		Password: " Secret1! ",
		Raw:      "  untouched ",
		Tags:     []string{" GROWTH ", "Leadership"},
		Goal:     Goal{Description: "learn\ngo"},
		Extra:    &Goal{Description: "ship\n\nit"},
		hidden:   "  x ",
	}

	require.NoError(t, sanitizer.SanitizeStruct(&in))
	assert.Equal(t, "a@b.com", in.Email)
	assert.Equal(t, "Ana", *in.Nickname)
	assert.Equal(t, " Secret1! ", in.Password)
	assert.Equal(t, "  untouched ", in.Raw)
	assert.Equal(t, []string{"gro", "lea"}, in.Tags)
	assert.Equal(t, "learn go", in.Goal.Description)
	assert.Equal(t, "ship it", in.Extra.Description)
	assert.Equal(t, "  x ", in.hidden)

	assert.Error(t, sanitizer.SanitizeStruct(in))
	n := 1
	assert.Error(t, sanitizer.SanitizeStruct(&n))
}

func TestRegisterSanitizer(t *testing.T) {
	t.Parallel()

	sanitizer.RegisterSanitizer("shout", strings.ToUpper)

	type Input struct {
		Value string `sanitize:"trim,shout,unknown"`
	}
	in := Input{Value: " hey "}
	require.NoError(t, sanitizer.SanitizeStruct(&in))
	assert.Equal(t, "HEY", in.Value)
}
