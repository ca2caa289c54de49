package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern    = regexp.MustCompile(`^[+]?[1-9][\d]{0,15}$`)
	redirectPattern = regexp.MustCompile(`^https?://.+`)
	whitespace      = regexp.MustCompile(`\s`)
)

// FieldErrors maps a form field to a user-facing message. It is returned as
// an error when a form step cannot be accepted.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("invalid fields: %s", strings.Join(fields, ", "))
}

// Content is the content step after it has been parsed. Text fields are
// trimmed and the contact number has its whitespace removed.
type Content struct {
	AdTitle       string
	CompanyName   string
	Description   string
	LinkRedirect  string
	Email         string
	ContactNumber string
	UploadedImage string
}

// ParseContent validates the content step. A nil FieldErrors means the
// returned Content is complete.
func ParseContent(f FormData) (Content, FieldErrors) {
	errs := FieldErrors{}
	c := Content{
		AdTitle:       strings.TrimSpace(f.AdTitle),
		CompanyName:   strings.TrimSpace(f.CompanyName),
		Description:   strings.TrimSpace(f.Description),
		LinkRedirect:  strings.TrimSpace(f.LinkRedirect),
		Email:         strings.TrimSpace(f.Email),
		ContactNumber: whitespace.ReplaceAllString(f.ContactNumber, ""),
		UploadedImage: f.UploadedImage,
	}

	if c.AdTitle == "" {
		errs["adTitle"] = "Please enter an ad title"
	}
	if c.CompanyName == "" {
		errs["companyName"] = "Please enter your company name"
	}
	switch {
	case c.Email == "":
		errs["email"] = "Please enter your email"
	case !emailPattern.MatchString(c.Email):
		errs["email"] = "Please enter a valid email address"
	}
	switch {
	case c.ContactNumber == "":
		errs["contactNumber"] = "Please enter your contact number"
	case !phonePattern.MatchString(c.ContactNumber):
		errs["contactNumber"] = "Please enter a valid phone number"
	}
	if c.UploadedImage == "" {
		errs["uploadedImage"] = "Please upload an ad image"
	}
	switch {
	case c.LinkRedirect == "":
		errs["linkRedirect"] = "Please enter a redirect URL"
	case !redirectPattern.MatchString(c.LinkRedirect):
		errs["linkRedirect"] = "Please enter a valid URL starting with http:// or https://"
	}

	if len(errs) > 0 {
		return Content{}, errs
	}
	return c, nil
}

// FormData converts parsed content back into the stored draft shape.
func (c Content) FormData() FormData {
	return FormData{
		AdTitle:       c.AdTitle,
		CompanyName:   c.CompanyName,
		Description:   c.Description,
		LinkRedirect:  c.LinkRedirect,
		Email:         c.Email,
		ContactNumber: c.ContactNumber,
		UploadedImage: c.UploadedImage,
	}
}

// ValidateAdImage checks uploaded artwork against the format's limits.
func ValidateAdImage(t AdType, size int64, width, height int) FieldErrors {
	f, err := t.Format()
	if err != nil {
		return FieldErrors{"uploadedImage": "Error validating image. Please try again."}
	}
	var problems []string
	if size > f.MaxFileBytes {
		problems = append(problems, fmt.Sprintf("File size must be less than %dMB", f.MaxFileBytes/megabyte))
	}
	if width != f.Width || height != f.Height {
		problems = append(problems, fmt.Sprintf("Image dimensions must be %s (got %dx%dpx)", f.Dimensions(), width, height))
	}
	if len(problems) > 0 {
		return FieldErrors{"uploadedImage": strings.Join(problems, ", ")}
	}
	return nil
}
