package settings

// Fields is one tier of the profile fallback chain, field-level. A nil
// pointer means the tier does not define the field; a pointer to an empty
// string still counts as defined for the authoritative tier.
type Fields struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Title    *string `json:"title,omitempty"`
	Location *string `json:"location,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Brand    *string `json:"brand,omitempty"`

	GitHub   *string `json:"github,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	Twitter  *string `json:"twitter,omitempty"`
	Website  *string `json:"website,omitempty"`

	SiteTitle       *string `json:"siteTitle,omitempty"`
	MetaDescription *string `json:"metaDescription,omitempty"`
	Keywords        *string `json:"keywords,omitempty"`
	OGImage         *string `json:"ogImage,omitempty"`
	OGTitle         *string `json:"ogTitle,omitempty"`
	OGType          *string `json:"ogType,omitempty"`
}

type SEO struct {
	SiteTitle       string `json:"siteTitle"`
	MetaDescription string `json:"metaDescription"`
	Keywords        string `json:"keywords"`
	OGImage         string `json:"ogImage"`
	OGTitle         string `json:"ogTitle"`
	OGType          string `json:"ogType"`
}

// EffectiveProfile is the merged view. Derived on every read, never stored.
type EffectiveProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
	Phone    string `json:"phone"`
	Brand    string `json:"brand"`

	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	Website  string `json:"website"`

	SEO SEO `json:"seo"`

	IsFromAPI bool `json:"isFromApi"`
}

// Defaults is the compiled-in bottom tier.
var Defaults = map[string]string{
	"name":            "Portfolio Owner",
	"email":           "hello@example.com",
	"title":           "Software Engineer",
	"location":        "Remote",
	"bio":             "I build things for the web.",
	"avatar":          "",
	"phone":           "",
	"brand":           "Portfolio",
	"github":          "",
	"linkedin":        "",
	"twitter":         "",
	"website":         "",
	"siteTitle":       "Portfolio",
	"metaDescription": "Personal portfolio and blog.",
	"keywords":        "portfolio,blog,projects",
	"ogImage":         "",
	"ogTitle":         "Portfolio",
	"ogType":          "website",
}

// pick applies the three-tier rule for one field: the authoritative value
// wins whenever it is defined (empty string included), then a non-empty local
// override, then the default.
func pick(api *string, local, def string) string {
	if api != nil {
		return *api
	}
	if local != "" {
		return local
	}
	return def
}

// Resolve merges the three tiers field by field. api is nil when the
// authoritative tier is entirely absent. The second return reports whether
// the authoritative tier contributed at least one field; it is informational
// only and must not gate anything.
func Resolve(api *Fields, local map[string]string, def map[string]string) (EffectiveProfile, bool) {
	if api == nil {
		api = &Fields{}
	}
	if local == nil {
		local = map[string]string{}
	}

	p := EffectiveProfile{
		Name:     pick(api.Name, local["name"], def["name"]),
		Email:    pick(api.Email, local["email"], def["email"]),
		Title:    pick(api.Title, local["title"], def["title"]),
		Location: pick(api.Location, local["location"], def["location"]),
		Bio:      pick(api.Bio, local["bio"], def["bio"]),
		Avatar:   pick(api.Avatar, local["avatar"], def["avatar"]),
		Phone:    pick(api.Phone, local["phone"], def["phone"]),
		Brand:    pick(api.Brand, local["brand"], def["brand"]),
		GitHub:   pick(api.GitHub, local["github"], def["github"]),
		LinkedIn: pick(api.LinkedIn, local["linkedin"], def["linkedin"]),
		Twitter:  pick(api.Twitter, local["twitter"], def["twitter"]),
		Website:  pick(api.Website, local["website"], def["website"]),
		SEO: SEO{
			SiteTitle:       pick(api.SiteTitle, local["siteTitle"], def["siteTitle"]),
			MetaDescription: pick(api.MetaDescription, local["metaDescription"], def["metaDescription"]),
			Keywords:        pick(api.Keywords, local["keywords"], def["keywords"]),
			OGImage:         pick(api.OGImage, local["ogImage"], def["ogImage"]),
			OGTitle:         pick(api.OGTitle, local["ogTitle"], def["ogTitle"]),
			OGType:          pick(api.OGType, local["ogType"], def["ogType"]),
		},
	}

	from := api.contributed()
	p.IsFromAPI = from
	return p, from
}

func (f *Fields) contributed() bool {
	for _, p := range f.ptrs() {
		if *p != nil {
			return true
		}
	}
	return false
}
