package portal

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

type demoForm struct {
	Name    string `validate:"required,min=2"`
	Email   string `validate:"required,email"`
	Message string `validate:"required,min=10"`
}

func TestValidatorPasses(t *testing.T) {
	v := GetDefaultValidator()

	ok, fields := v.Passes(demoForm{
		Name:    "Jordan",
		Email:   "jordan@example.test",
		Message: "A message that is definitely long enough.",
	})

	if !ok {
		t.Fatalf("expected valid form to pass, got fields=%+v", fields)
	}

	if len(fields) != 0 {
		t.Fatalf("expected no field errors, got %+v", fields)
	}
}

func TestValidatorReturnsEveryViolation(t *testing.T) {
	v := GetDefaultValidator()

	ok, fields := v.Passes(demoForm{Name: "J", Email: "nope", Message: "short"})
	if ok {
		t.Fatalf("expected invalid form to fail")
	}

	if len(fields) != 3 {
		t.Fatalf("expected three violations, got %+v", fields)
	}

	if fields["name"] != "Must be at least 2 characters" {
		t.Fatalf("unexpected name message %q", fields["name"])
	}

	if fields["email"] != "Please enter a valid email address" {
		t.Fatalf("unexpected email message %q", fields["email"])
	}
}

func TestValidatorFieldNamesAreLowerCamel(t *testing.T) {
	v := GetDefaultValidator()

	ok, fields := v.Passes(demoForm{})
	if ok {
		t.Fatalf("expected empty form to fail")
	}

	for field := range fields {
		if field[:1] != strings.ToLower(field[:1]) {
			t.Fatalf("expected lowerCamel field name, got %q", field)
		}
	}
}

func TestValidatorErrorsAsJson(t *testing.T) {
	if ErrorsAsJson(nil) != "" {
		t.Fatalf("expected empty json for no field errors")
	}

	v := GetDefaultValidator()
	_, fields := v.Passes(demoForm{})

	out := ErrorsAsJson(fields)
	if !strings.Contains(out, "This field is required") {
		t.Fatalf("expected required message in %q", out)
	}
}

func TestValidatorRejects(t *testing.T) {
	v := GetDefaultValidator()

	rejected, fields := v.Rejects(demoForm{})
	if !rejected || len(fields) == 0 {
		t.Fatalf("expected rejection with field errors, got rejected=%v fields=%+v", rejected, fields)
	}
}

// One validator value serves every request, so concurrent calls must not
// bleed field errors into each other.
func TestValidatorConcurrentCallsStayIsolated(t *testing.T) {
	v := GetDefaultValidator()

	var wg sync.WaitGroup
	failures := make(chan string, 400)

	for worker := 0; worker < 8; worker++ {
		wg.Add(1)

		go func(worker int) {
			defer wg.Done()

			for i := 0; i < 50; i++ {
				if worker%2 == 0 {
					ok, fields := v.Passes(demoForm{Name: "J", Email: "nope", Message: "short"})
					if ok || len(fields) != 3 {
						failures <- fmt.Sprintf("worker %d: expected three violations, got ok=%v fields=%+v", worker, ok, fields)

						return
					}

					continue
				}

				ok, fields := v.Passes(demoForm{
					Name:    "Jordan",
					Email:   "jordan@example.test",
					Message: "A message that is definitely long enough.",
				})

				if !ok || len(fields) != 0 {
					failures <- fmt.Sprintf("worker %d: expected a clean pass, got ok=%v fields=%+v", worker, ok, fields)

					return
				}
			}
		}(worker)
	}

	wg.Wait()
	close(failures)

	for failure := range failures {
		t.Error(failure)
	}
}
