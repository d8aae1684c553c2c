package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "urna/internal/platform/errors"
	"urna/internal/platform/testkit"
)

type titledInput struct {
	Titulo    string `json:"titulo" validate:"required,notblank"`
	Descricao string `json:"descricao" validate:"required,notblank"`
}

func postJSON(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestParseJSON_RejectsBlankStrings(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"whitespace only", `{"titulo":"   ","descricao":"  "}`},
		{"tabs and newlines", "{\"titulo\":\"\\t\\n\",\"descricao\":\"x\"}"},
		{"empty string", `{"titulo":"","descricao":"x"}`},
	}
	for _, tc := range cases {
		_, err := ParseJSON[titledInput](postJSON(tc.body))
		if perr.CodeOf(err) != perr.ErrorCodeValidation {
			t.Fatalf("%s: want validation error, got %v", tc.name, err)
		}
		testkit.MustContain(t, err.Error(), "titulo")
	}
}

func TestParseJSON_AcceptsNonBlankStrings(t *testing.T) {
	t.Parallel()

	out, err := ParseJSON[titledInput](postJSON(`{"titulo":"Reforma","descricao":"Texto"}`))
	if err != nil {
		t.Fatalf("ParseJSON returned error: %v", err)
	}
	if out.Titulo != "Reforma" || out.Descricao != "Texto" {
		t.Fatalf("bound value mismatch: %+v", out)
	}
}

func TestParseJSON_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := ParseJSON[titledInput](postJSON(`{"titulo":"a","descricao":"b","extra":1}`))
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("want json error, got %v", err)
	}
}
