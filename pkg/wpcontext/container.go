package wpcontext

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidID is returned for an empty container id.
	ErrInvalidID = errors.New("wpcontext: container id must not be empty")

	// ErrNilRule is returned when a container is created without a rule.
	ErrNilRule = errors.New("wpcontext: nil rule")
)

// Rule classifies a request. It returns "" when it does not apply.
type Rule func(q Query) string

// Container pairs a rule with the id it is registered under.
type Container struct {
	id   string
	rule Rule
}

func NewContainer(id string, rule Rule) (*Container, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	if rule == nil {
		return nil, fmt.Errorf("container %q: %w", id, ErrNilRule)
	}
	return &Container{id: id, rule: rule}, nil
}

func (c *Container) ID() string {
	return c.id
}

func (c *Container) Rule() Rule {
	return c.rule
}

// Run evaluates the rule against q.
func (c *Container) Run(q Query) string {
	return c.rule(q)
}

// DefaultRule maps the standard WordPress template hierarchy to context
// keys such as "home/posts", "tax/genre" or "single/page".
func DefaultRule(q Query) string {
	switch {
	case q.IsHome():
		return "home/posts"
	case q.IsFrontPage():
		return "home/page"
	case q.IsSearch():
		return "search"
	case q.Is404():
		return "error/404"
	case q.IsCategory():
		return "tax/category"
	case q.IsTag():
		return "tax/tag"
	case q.IsTax():
		return "tax/" + q.Var("taxonomy")
	case q.IsPostTypeArchive():
		return "archive/" + q.Var("post_type")
	case q.IsDate():
		switch {
		case q.IsYear():
			return "archive/date/year"
		case q.IsMonth():
			return "archive/date/month"
		case q.IsDay():
			return "archive/date/day"
		}
		return ""
	case q.IsAuthor():
		return "archive/author"
	case q.IsSingular():
		postType := "post"
		if q.IsPage() {
			postType = "page"
		} else if pt := q.Var("post_type"); pt != "" {
			postType = pt
		}
		return "single/" + postType
	}
	return ""
}
