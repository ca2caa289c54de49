package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentEmail(t *testing.T) {
	cases := map[string]bool{
		"a@b.co":         true,
		"user.name@x.pk": true,
		" a@b.co ":       true,
		"a@b":            false,
		"no-at-sign.com": false,
	}
	for email, ok := range cases {
		f := validForm()
		f.Email = email
		_, errs := ParseContent(f)
		if ok {
			assert.NotContains(t, errs, "email", email)
		} else {
			assert.Contains(t, errs, "email", email)
		}
	}
}

func TestParseContentPhone(t *testing.T) {
	cases := map[string]bool{
		"+92 300 1234567":    true,
		"03001234567":        false,
		"923001234567":       true,
		"+1234567890123456":  true,
		"+12345678901234567": false,
		"12-34":              false,
	}
	for phone, ok := range cases {
		f := validForm()
		f.ContactNumber = phone
		_, errs := ParseContent(f)
		if ok {
			assert.NotContains(t, errs, "contactNumber", phone)
		} else {
			assert.Equal(t, "Please enter a valid phone number", errs["contactNumber"], phone)
		}
	}
}

func TestParseContentRequiredFields(t *testing.T) {
	_, errs := ParseContent(FormData{})
	require.NotNil(t, errs)
	assert.Equal(t, "Please enter an ad title", errs["adTitle"])
	assert.Equal(t, "Please enter your company name", errs["companyName"])
	assert.Equal(t, "Please enter your email", errs["email"])
	assert.Equal(t, "Please enter your contact number", errs["contactNumber"])
	assert.Equal(t, "Please upload an ad image", errs["uploadedImage"])
	assert.Equal(t, "Please enter a redirect URL", errs["linkRedirect"])
	assert.NotContains(t, errs, "description")
	assert.Equal(t, "invalid fields: adTitle, companyName, contactNumber, email, linkRedirect, uploadedImage", errs.Error())
}

func TestParseContentRedirect(t *testing.T) {
	f := validForm()
	f.LinkRedirect = "ftp://example.com"
	_, errs := ParseContent(f)
	assert.Equal(t, "Please enter a valid URL starting with http:// or https://", errs["linkRedirect"])
}

func TestParseContentNormalizes(t *testing.T) {
	f := validForm()
	f.AdTitle = "  Title  "
	c, errs := ParseContent(f)
	require.Nil(t, errs)
	assert.Equal(t, "Title", c.AdTitle)
	assert.Equal(t, "+923001234567", c.ContactNumber)
}

func TestValidateAdImage(t *testing.T) {
	assert.Nil(t, ValidateAdImage(AdTypeVertical, 1<<20, 300, 600))

	errs := ValidateAdImage(AdTypeVertical, 1<<20, 301, 600)
	assert.Contains(t, errs["uploadedImage"], "Image dimensions must be 300x600px")

	errs = ValidateAdImage(AdTypeVertical, 3<<20, 300, 600)
	assert.Equal(t, "File size must be less than 2MB", errs["uploadedImage"])

	assert.Nil(t, ValidateAdImage(AdTypeSplash, 3<<20, 400, 300))

	errs = ValidateAdImage(AdTypeSquare, 5<<20, 10, 10)
	assert.Equal(t, 2, len(strings.Split(errs["uploadedImage"], ", ")))
}
