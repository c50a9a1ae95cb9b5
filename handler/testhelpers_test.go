package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rmourey26/resendit-asset-intel-website-blog/database"
	"github.com/rmourey26/resendit-asset-intel-website-blog/metal/env"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/endpoint"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/mail"
)

type recordingSender struct {
	sent    []*mail.Message
	failFor map[string]bool // subject substring -> fail
}

func (s *recordingSender) Send(ctx context.Context, msg *mail.Message) (string, error) {
	for needle := range s.failFor {
		if strings.Contains(msg.Subject, needle) {
			return "", errors.New("provider rejected the message")
		}
	}

	s.sent = append(s.sent, msg)

	return fmt.Sprintf("msg-%d", len(s.sent)), nil
}

func (s *recordingSender) subjects() []string {
	var out []string
	for _, msg := range s.sent {
		out = append(out, msg.Subject)
	}

	return out
}

func newTestConnection(t *testing.T) *database.Connection {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if err := db.AutoMigrate(
		&database.Inquiry{},
		&database.NewsletterSubscriber{},
		&database.WaitlistEntry{},
		&database.Category{},
		&database.Tag{},
		&database.Post{},
		&database.PostTag{},
	); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database.NewConnectionFromGorm(db)
}

func testMailEnv() env.MailEnvironment {
	return env.MailEnvironment{
		APIKey:         "re_test_key",
		From:           "Resend-It <noreply@example.test>",
		ReplyTo:        "support@example.test",
		HelpInbox:      "help@example.test",
		SubscribeInbox: "subscribe@example.test",
		InterestedPlan: "lite",
	}
}

func newMailService(sender mail.Sender, mailEnv *env.MailEnvironment) *mail.Service {
	return mail.MakeService(sender, mailEnv)
}

func postJSON(t *testing.T, target, body string) *http.Request {
	t.Helper()

	r := httptest.NewRequest("POST", target, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	r.RemoteAddr = "203.0.113.7:51234"

	return r
}

func callHandler(t *testing.T, fn endpoint.ApiHandler, r *http.Request) (*httptest.ResponseRecorder, *endpoint.ApiError) {
	t.Helper()

	w := httptest.NewRecorder()
	apiErr := fn(w, r)

	return w, apiErr
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	return out
}
