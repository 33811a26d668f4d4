package specialist

import (
	"strings"

	"cosec/internal/models"
	"cosec/internal/validation"

	"github.com/shopspring/decimal"
)

// SpecialistInput is the admin payload for creating or replacing a listing.
// Fees are never accepted from the client.
type SpecialistInput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	SecretaryName string   `json:"secretary_name"`
	CompanyName   string   `json:"company_name"`
	Category      string   `json:"category"`
	State         string   `json:"state"`
	Tags          []string `json:"tags"`
	ImageURLs     []string `json:"image_urls"`
	BasePrice     *float64 `json:"base_price"`
	IsDraft       bool     `json:"is_draft"`
}

func (in SpecialistInput) Validate() error {
	v := validation.New()

	v.Required("title", in.Title)
	v.MaxLength("title", in.Title, validation.MaxTitleLength)
	v.MaxLength("description", in.Description, validation.MaxDescriptionLength)
	v.MaxLength("secretary_name", in.SecretaryName, validation.MaxNameLength)
	v.MaxLength("company_name", in.CompanyName, validation.MaxCompanyLength)
	v.MaxLength("category", in.Category, validation.MaxCategoryLength)
	v.MaxLength("state", in.State, validation.MaxCategoryLength)
	v.MaxItems("tags", in.Tags, validation.MaxTags)
	v.MaxItems("image_urls", in.ImageURLs, validation.MaxImages)

	v.Required("base_price", in.BasePrice)
	if in.BasePrice != nil {
		v.Range("base_price", *in.BasePrice, validation.MinBasePrice, validation.MaxBasePrice)
	}

	return v.Err()
}

func (in SpecialistInput) apply(s *models.Specialist) {
	s.Title = strings.TrimSpace(in.Title)
	s.Description = strings.TrimSpace(in.Description)
	s.SecretaryName = strings.TrimSpace(in.SecretaryName)
	s.CompanyName = strings.TrimSpace(in.CompanyName)
	s.Category = strings.TrimSpace(in.Category)
	s.State = strings.TrimSpace(in.State)
	s.Tags = compact(in.Tags)
	s.ImageURLs = compact(in.ImageURLs)
	// Columns are decimal(12,2); price the value that will be stored.
	s.BasePrice = decimal.NewFromFloat(*in.BasePrice).Round(2).InexactFloat64()
	s.IsDraft = in.IsDraft
}

// compact trims entries and drops blanks and repeats, keeping order.
func compact(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
