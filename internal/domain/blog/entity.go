package blog

const CollectionPath = "blog_posts"

type Comment struct {
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}

// Post is the persisted blog record. Timestamps are epoch milliseconds.
type Post struct {
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Excerpt       string    `json:"excerpt"`
	Slug          string    `json:"slug"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	Author        string    `json:"author"`
	CreatedAt     int64     `json:"createdAt"`
	UpdatedAt     int64     `json:"updatedAt"`
	IsAIGenerated bool      `json:"isAIGenerated"`
	ReadTime      int       `json:"readTime"`
	Views         int       `json:"views"`
	Likes         int       `json:"likes"`
	Comments      []Comment `json:"comments"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

const DefaultCategory = "kariyer-rehberi"

var categories = []Category{
	{ID: "kariyer-rehberi", Name: "Kariyer Rehberi", Icon: "🚀"},
	{ID: "cv-ipuclari", Name: "CV İpuçları", Icon: "📄"},
	{ID: "mulakat-rehberi", Name: "Mülakat Rehberi", Icon: "💼"},
	{ID: "is-piyasasi", Name: "İş Piyasası", Icon: "📊"},
	{ID: "uzaktan-calisma", Name: "Uzaktan Çalışma", Icon: "🏠"},
	{ID: "sektor-analizi", Name: "Sektör Analizi", Icon: "🔍"},
	{ID: "kisisel-gelisim", Name: "Kişisel Gelişim", Icon: "🌱"},
}

// Categories returns a copy of the fixed category list in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func IsCategory(id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
