package filter

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/twitterctl/twitter"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	extra      map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[CompiledFilter](size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.extra, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) Compiler {
	c := &exprCompiler{
		extra: make(map[string]any),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type exprCompiler struct {
	extra map[string]any
	cache *lruCache[CompiledFilter]
}

// Compile compiles an expression into an executable filter. The expression
// is type checked against an empty status, so unknown names are rejected.
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	env := newEnvironment(&twitter.StatusMessage{}, c.extra)
	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		extra:      c.extra,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}

// Evaluate reports whether status matches. Statuses the expression cannot
// be evaluated against do not match.
func (f *exprFilter) Evaluate(status *twitter.StatusMessage) bool {
	ok, err := f.Match(status)
	return err == nil && ok
}

// Match runs the program against status
func (f *exprFilter) Match(status *twitter.StatusMessage) (bool, error) {
	if status == nil {
		return false, &EvaluationError{Expression: f.expression, Err: twitter.ErrNilStatus}
	}

	result, err := expr.Run(f.program, newEnvironment(status, f.extra))
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, StatusID: status.ID, Err: err}
	}

	// AsBool guarantees the type
	return result.(bool), nil
}

// Expression returns the expression as written
func (f *exprFilter) Expression() string {
	return f.expression
}

// addHelperFunctions adds the status independent helpers to env
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["hoursSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours())
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["hoursAgo"] = func(hours int) time.Time {
		return time.Now().Add(-time.Duration(hours) * time.Hour)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["now"] = time.Now
}

// newEnvironment builds the variables and helpers visible to an expression
func newEnvironment(status *twitter.StatusMessage, extra map[string]any) map[string]any {
	env := make(map[string]any, 48)
	addHelperFunctions(env)

	hashtags := status.Entities.HashtagTexts()
	mentions := status.Entities.MentionedScreenNames()
	media := status.Media()

	env["Status"] = status

	env["hasHashtag"] = containsFold(hashtags)
	env["mentions"] = containsFold(mentions)
	env["from"] = func(screenName string) bool {
		return strings.EqualFold(status.AuthorScreenName(), strings.TrimPrefix(screenName, "@"))
	}
	env["hasMediaType"] = func(mediaType string) bool {
		return slices.ContainsFunc(media, func(m twitter.MediaEntity) bool {
			return strings.EqualFold(string(m.Type), mediaType)
		})
	}
	env["inCountry"] = func(code string) bool {
		return status.Place != nil && strings.EqualFold(status.Place.CountryCode, code)
	}

	// Direct status properties for convenience
	env["ID"] = status.ID
	env["Text"] = status.DisplayText()
	env["Author"] = status.AuthorScreenName()
	env["CreatedAt"] = status.CreatedAt.Time
	env["Lang"] = deref(status.Lang)
	env["Hashtags"] = hashtags
	env["Mentions"] = mentions
	env["RetweetCount"] = status.RetweetCount
	env["FavoriteCount"] = status.FavoriteCount
	env["ReplyCount"] = status.ReplyCount
	env["QuoteCount"] = status.QuoteCount
	env["IsRetweet"] = status.IsRetweet()
	env["IsReply"] = status.IsReply()
	env["IsQuote"] = status.IsQuoteStatus
	env["HasMedia"] = len(media) > 0
	env["Sensitive"] = status.PossiblySensitive != nil && *status.PossiblySensitive

	var followers int
	var verified bool
	if status.User != nil {
		followers = status.User.FollowersCount
		verified = status.User.Verified
	}
	env["Followers"] = followers
	env["Verified"] = verified

	maps.Copy(env, extra)

	return env
}

// containsFold returns a case-insensitive membership test over values.
// A leading '#' or '@' in the argument is ignored.
func containsFold(values []string) func(string) bool {
	lower := make([]string, len(values))
	for i, v := range values {
		lower[i] = strings.ToLower(v)
	}
	return func(s string) bool {
		s = strings.ToLower(strings.TrimLeft(s, "#@"))
		return slices.Contains(lower, s)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
