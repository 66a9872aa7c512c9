package shell

// Page identifies one of the application's pages.
type Page string

const (
	PageHome     Page = "home"
	PageAnalyze  Page = "analyze"
	PageResults  Page = "results"
	PageTakeCare Page = "take-care"
	PageBlog     Page = "blog"
)

// Pages lists every page in navigation order.
var Pages = []Page{PageHome, PageAnalyze, PageResults, PageTakeCare, PageBlog}

// Path is the route serving the page.
func (p Page) Path() string {
	if p == PageHome {
		return "/"
	}
	return "/" + string(p)
}

// Valid reports whether p is a known page.
func (p Page) Valid() bool {
	for _, known := range Pages {
		if p == known {
			return true
		}
	}
	return false
}
