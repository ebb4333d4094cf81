package validation

import (
	"strings"
	"testing"
)

func TestValidPhoneNumber(t *testing.T) {
	valid := []string{"+14155552671", "+998901234567", "+4930123456", "+12"}
	invalid := []string{
		"",
		"14155552671",
		"+0123456", // country code may not start with zero
		"+1",       // at least one digit after the country-code digit
		"+1234567890123456",
		"+1 415 555 2671",
		"phone",
	}

	for _, v := range valid {
		if !ValidPhoneNumber(v) {
			t.Errorf("ValidPhoneNumber(%q) = false, want true", v)
		}
	}
	for _, v := range invalid {
		if ValidPhoneNumber(v) {
			t.Errorf("ValidPhoneNumber(%q) = true, want false", v)
		}
	}
}

func TestCategoryFormats(t *testing.T) {
	type category struct {
		Title string `json:"title" validate:"required,category_title"`
		Slug  string `json:"slug" validate:"required,slug"`
	}

	tests := []struct {
		name    string
		in      category
		wantErr string
	}{
		{"valid", category{Title: "Drinks", Slug: "drinks"}, ""},
		{"lowercase title", category{Title: "drinks", Slug: "drinks"}, "invalid title format"},
		{"two words", category{Title: "Hot Drinks", Slug: "drinks"}, "invalid title format"},
		{"uppercase slug", category{Title: "Drinks", Slug: "Drinks"}, "invalid slug format"},
		{"hyphenated slug", category{Title: "Drinks", Slug: "hot-drinks"}, "invalid slug format"},
		{"missing title", category{Slug: "drinks"}, "missing required field title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Fatalf("got %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestPersonNameFormat(t *testing.T) {
	type payload struct {
		Name string `json:"name" validate:"omitempty,person_name"`
	}

	valid := []string{"", "Alice", "Jean Claude", "Mary Jane Watson"}
	invalid := []string{"Alice2", " Alice", "Alice ", "Jean  Claude", "Анна"}

	for _, v := range valid {
		if err := Struct(payload{Name: v}); err != nil {
			t.Errorf("name %q rejected: %v", v, err)
		}
	}
	for _, v := range invalid {
		if err := Struct(payload{Name: v}); err == nil {
			t.Errorf("name %q accepted, want rejection", v)
		}
	}
}

func TestImageURLFormat(t *testing.T) {
	type payload struct {
		Image string `json:"image" validate:"required,image_url"`
	}

	valid := []string{
		"https://cdn.example.com/menu/steak.jpg",
		"http://example.com/a.jpeg",
		"https://example.com/dish.PNG",
		"https://example.com/dish.webp?w=640",
		"https://example.com/dish.avif",
	}
	invalid := []string{
		"ftp://example.com/dish.png",
		"https://example.com/dish.gif",
		"https://example.com/dish",
		"example.com/dish.png",
		"https://example.com/di sh.png",
	}

	for _, v := range valid {
		if err := Struct(payload{Image: v}); err != nil {
			t.Errorf("image %q rejected: %v", v, err)
		}
	}
	for _, v := range invalid {
		if err := Struct(payload{Image: v}); err == nil {
			t.Errorf("image %q accepted, want rejection", v)
		}
	}
}

func TestErrorMessagesUseJSONNames(t *testing.T) {
	type payload struct {
		PhoneNumber string `json:"phone_number" validate:"required,phone"`
	}

	err := Struct(payload{PhoneNumber: "nope"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "phone_number") {
		t.Fatalf("error %q does not name the json field", err)
	}
}
