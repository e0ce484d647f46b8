package settings

import "testing"

func strp(s string) *string { return &s }

func TestResolve_AuthoritativeWins(t *testing.T) {
	api := &Fields{Name: strp("Api Name"), Bio: strp("")}
	local := map[string]string{"name": "Local Name", "bio": "Local Bio"}

	p, fromAPI := Resolve(api, local, Defaults)

	if p.Name != "Api Name" {
		t.Fatalf("name = %q, want authoritative value", p.Name)
	}
	// empty string from the authoritative tier still counts as defined
	if p.Bio != "" {
		t.Fatalf("bio = %q, want empty authoritative value", p.Bio)
	}
	if !fromAPI {
		t.Fatal("expected fromAPI = true")
	}
}

func TestResolve_FieldLevelFallback(t *testing.T) {
	// api defines only name; every other field falls through independently
	api := &Fields{Name: strp("Api Name")}
	local := map[string]string{"email": "local@example.com"}

	p, _ := Resolve(api, local, Defaults)

	if p.Name != "Api Name" {
		t.Fatalf("name = %q", p.Name)
	}
	if p.Email != "local@example.com" {
		t.Fatalf("email = %q, want local tier", p.Email)
	}
	if p.Title != Defaults["title"] {
		t.Fatalf("title = %q, want default", p.Title)
	}
}

func TestResolve_EmptyLocalFallsToDefault(t *testing.T) {
	local := map[string]string{"title": ""}

	p, fromAPI := Resolve(nil, local, Defaults)

	if p.Title != Defaults["title"] {
		t.Fatalf("title = %q, want default", p.Title)
	}
	if fromAPI {
		t.Fatal("expected fromAPI = false with nil authoritative tier")
	}
}

func TestResolve_SEOFields(t *testing.T) {
	api := &Fields{SiteTitle: strp("My Site"), OGType: strp("article")}

	p, _ := Resolve(api, nil, Defaults)

	if p.SEO.SiteTitle != "My Site" {
		t.Fatalf("siteTitle = %q", p.SEO.SiteTitle)
	}
	if p.SEO.OGType != "article" {
		t.Fatalf("ogType = %q", p.SEO.OGType)
	}
	if p.SEO.MetaDescription != Defaults["metaDescription"] {
		t.Fatalf("metaDescription = %q, want default", p.SEO.MetaDescription)
	}
}

func TestResolve_NilTiersUseDefaults(t *testing.T) {
	p, fromAPI := Resolve(nil, nil, Defaults)

	if fromAPI {
		t.Fatal("expected fromAPI = false")
	}
	if p.Name != Defaults["name"] || p.Email != Defaults["email"] {
		t.Fatalf("expected defaults, got name=%q email=%q", p.Name, p.Email)
	}
}
