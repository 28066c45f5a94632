package wpcontext

// Query exposes the request predicates a classification rule inspects.
type Query interface {
	IsHome() bool
	IsFrontPage() bool
	IsSearch() bool
	Is404() bool
	IsCategory() bool
	IsTag() bool
	IsTax() bool
	IsPostTypeArchive() bool
	IsDate() bool
	IsYear() bool
	IsMonth() bool
	IsDay() bool
	IsAuthor() bool
	IsSingular() bool
	IsPage() bool
	// Var returns a query variable such as "taxonomy" or "post_type".
	Var(name string) string
}

// StaticQuery is a Query backed by plain fields.
type StaticQuery struct {
	Home            bool
	FrontPage       bool
	Search          bool
	NotFound        bool
	Category        bool
	Tag             bool
	Tax             bool
	PostTypeArchive bool
	Date            bool
	Year            bool
	Month           bool
	Day             bool
	Author          bool
	Singular        bool
	Page            bool
	Vars            map[string]string
}

var _ Query = StaticQuery{}

func (q StaticQuery) IsHome() bool            { return q.Home }
func (q StaticQuery) IsFrontPage() bool       { return q.FrontPage }
func (q StaticQuery) IsSearch() bool          { return q.Search }
func (q StaticQuery) Is404() bool             { return q.NotFound }
func (q StaticQuery) IsCategory() bool        { return q.Category }
func (q StaticQuery) IsTag() bool             { return q.Tag }
func (q StaticQuery) IsTax() bool             { return q.Tax }
func (q StaticQuery) IsPostTypeArchive() bool { return q.PostTypeArchive }
func (q StaticQuery) IsDate() bool            { return q.Date }
func (q StaticQuery) IsYear() bool            { return q.Year }
func (q StaticQuery) IsMonth() bool           { return q.Month }
func (q StaticQuery) IsDay() bool             { return q.Day }
func (q StaticQuery) IsAuthor() bool          { return q.Author }
func (q StaticQuery) IsSingular() bool        { return q.Singular }
func (q StaticQuery) IsPage() bool            { return q.Page }
func (q StaticQuery) Var(name string) string  { return q.Vars[name] }
