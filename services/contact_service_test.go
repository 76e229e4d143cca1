package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/diyahomestylist/poppyandteal/backend"
	"github.com/diyahomestylist/poppyandteal/models"
)

func TestContactLinks(t *testing.T) {
	svc := NewContactService(nil, nil, newSeedCatalog(t), "911", "922", nil)

	tests := []struct {
		kind    string
		prefix  string
		wantErr error
	}{
		{kind: "", prefix: "https://wa.me/911?text=Hi%21%20I%27m%20interested%20in%20your"},
		{kind: LinkGeneral, prefix: "https://wa.me/911?text="},
		{kind: LinkCustom, prefix: "https://wa.me/911?text=Hi%21%20I%27m%20interested%20in%20a%20custom"},
		{kind: LinkQuick, prefix: "https://wa.me/922?text="},
		{kind: "fax", wantErr: ErrUnknownLinkKind},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			link, err := svc.Link(tt.kind)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Link(%q) err = %v, want %v", tt.kind, err, tt.wantErr)
			}
			if !strings.HasPrefix(link, tt.prefix) {
				t.Errorf("Link(%q) = %q, want prefix %q", tt.kind, link, tt.prefix)
			}
		})
	}
}

func TestProductLink(t *testing.T) {
	svc := NewContactService(nil, nil, newSeedCatalog(t), "911", "922", nil)

	link, err := svc.ProductLink(context.Background(), "2")
	if err != nil {
		t.Fatalf("ProductLink() = %v", err)
	}
	if !strings.Contains(link, "Spiral%20Plant%20Hanger%20%28%E2%82%B945.5%29") {
		t.Errorf("ProductLink() = %q", link)
	}
	if _, err := svc.ProductLink(context.Background(), "404"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("ProductLink(404) err = %v, want ErrProductNotFound", err)
	}
}

func TestSubmitSurvivesBackendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"down"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	client := backend.New(srv.URL, time.Second)
	svc := NewContactService(client, nil, newSeedCatalog(t), "911", "922", nil)

	result := svc.Submit(context.Background(), models.ContactRequest{Name: "Asha", Email: "asha@example.com", Message: "Hello"})
	if result.Contact != nil {
		t.Errorf("Contact = %+v, want nil", result.Contact)
	}
	want := "https://wa.me/922?text=Hi%21%20I%27m%20Asha%0AEmail%3A%20asha%40example.com%0A%0AMessage%3A%20Hello"
	if result.WhatsAppURL != want {
		t.Errorf("WhatsAppURL = %q, want %q", result.WhatsAppURL, want)
	}
}

func TestSubmitRecordsContact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/contact" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"id":"c1","name":"Asha","status":"new"}`))
	}))
	defer srv.Close()
	svc := NewContactService(backend.New(srv.URL, time.Second), nil, newSeedCatalog(t), "911", "922", nil)

	result := svc.Submit(context.Background(), models.ContactRequest{Name: "Asha", Email: "asha@example.com", Message: "Hello"})
	if result.Contact == nil || result.Contact.ID != "c1" {
		t.Errorf("Contact = %+v", result.Contact)
	}
}

func TestContactEmailBodyEscapesInput(t *testing.T) {
	body := contactBody(models.ContactRequest{Name: "<b>Asha</b>", Email: "a@example.com", Message: "line1\nline2"})
	if strings.Contains(body, "<b>Asha</b>") {
		t.Error("name was not escaped")
	}
	if !strings.Contains(body, "line1<br>line2") {
		t.Error("message newlines were not converted")
	}
}
