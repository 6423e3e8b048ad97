package catalog

var (
	images    = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}
	documents = []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"application/vnd.ms-powerpoint",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
		"application/zip",
		"image/jpeg",
		"image/png",
	}
)

var (
	activeToggle       = map[string]string{"active": ColumnIsActive}
	activeMobileToggle = map[string]string{"active": ColumnIsActive, "mobile": "show_on_mobile"}
)

func title() Column {
	return Column{Name: "title", Kind: Text, Rules: "max=255", Required: true, Searchable: true, Sortable: true}
}

func isActive() Column {
	return Column{Name: ColumnIsActive, Kind: Bool, Sortable: true}
}

func sortOrder() Column {
	return Column{Name: ColumnSortOrder, Kind: Int, Rules: "gte=0", Sortable: true}
}

func Banners() *Schema {
	return &Schema{
		Name:  "banners",
		Table: "banners",
		Columns: []Column{
			title(),
			{Name: "subtitle", Kind: Text, Rules: "max=500", Searchable: true},
			{Name: "image", Kind: File, Required: true, Accept: images},
			{Name: "mobile_image", Kind: File, Accept: images},
			{Name: "link", Kind: Text, Rules: "url"},
			isActive(),
			{Name: "show_on_mobile", Kind: Bool, Sortable: true},
			sortOrder(),
		},
		Orderable: true,
		Toggles:   activeMobileToggle,
	}
}

func Videos() *Schema {
	return &Schema{
		Name:  "videos",
		Table: "videos",
		Columns: []Column{
			title(),
			{Name: "video_url", Kind: Text, Rules: "url", Required: true},
			{Name: "thumbnail", Kind: File, Accept: images},
			{Name: "description", Kind: Text, Searchable: true},
			isActive(),
		},
		Toggles: activeToggle,
	}
}

func Galleries() *Schema {
	return &Schema{
		Name:  "galleries",
		Table: "galleries",
		Columns: []Column{
			title(),
			{Name: "category", Kind: Text, Rules: "max=100", Searchable: true, Sortable: true},
			{Name: "image", Kind: File, Required: true, Accept: images},
			isActive(),
		},
		Toggles: activeToggle,
	}
}

func Blogs() *Schema {
	return &Schema{
		Name:  "blogs",
		Table: "blogs",
		Columns: []Column{
			title(),
			{Name: "author", Kind: Text, Rules: "max=255", Searchable: true, Sortable: true},
			{Name: "excerpt", Kind: Text, Rules: "max=1000"},
			{Name: "content", Kind: Text, Required: true},
			{Name: "image", Kind: File, Accept: images},
			{Name: "published_at", Kind: Date, Sortable: true},
			isActive(),
		},
		Toggles: activeToggle,
	}
}

// Services are the certifications offered on the site.
func Services() *Schema {
	return &Schema{
		Name:  "services",
		Table: "services",
		Columns: []Column{
			title(),
			{Name: "short_description", Kind: Text, Rules: "max=500", Searchable: true},
			{Name: "description", Kind: Text},
			{Name: "icon", Kind: File, Accept: images},
			{Name: "image", Kind: File, Accept: images},
			isActive(),
			{Name: "show_on_mobile", Kind: Bool, Sortable: true},
			sortOrder(),
		},
		Orderable: true,
		Toggles:   activeMobileToggle,
	}
}

func Courses() *Schema {
	return &Schema{
		Name:  "courses",
		Table: "courses",
		Columns: []Column{
			title(),
			{Name: "description", Kind: Text},
			{Name: "duration", Kind: Text, Rules: "max=100"},
			{Name: "fee", Kind: Int, Rules: "gte=0", Sortable: true},
			{Name: "image", Kind: File, Accept: images},
			isActive(),
		},
		Toggles: activeToggle,
	}
}

func Resources() *Schema {
	return &Schema{
		Name:  "resources",
		Table: "resources",
		Columns: []Column{
			title(),
			{Name: "description", Kind: Text, Searchable: true},
			{Name: "file", Kind: File, Required: true, Accept: documents},
			isActive(),
		},
		Toggles: activeToggle,
	}
}

func FAQs() *Schema {
	return &Schema{
		Name:  "faqs",
		Table: "faqs",
		Columns: []Column{
			{Name: "question", Kind: Text, Rules: "max=500", Required: true, Searchable: true, Sortable: true},
			{Name: "answer", Kind: Text, Required: true, Searchable: true},
			isActive(),
			sortOrder(),
		},
		Orderable: true,
		Toggles:   activeToggle,
	}
}

// Updates back the "latest updates" ticker.
func Updates() *Schema {
	return &Schema{
		Name:  "updates",
		Table: "updates",
		Columns: []Column{
			title(),
			{Name: "description", Kind: Text, Searchable: true},
			{Name: "link", Kind: Text, Rules: "url"},
			{Name: "published_at", Kind: Date, Sortable: true},
			isActive(),
		},
		Toggles: activeToggle,
	}
}

// Applications are certification requests managed by the admins.
func Applications() *Schema {
	return &Schema{
		Name:  "applications",
		Table: "applications",
		Columns: []Column{
			{Name: "name", Kind: Text, Rules: "max=255", Required: true, Searchable: true, Sortable: true},
			{Name: "email", Kind: Text, Rules: "email", Required: true, Searchable: true, Sortable: true},
			{Name: "phone", Kind: Text, Rules: "max=32"},
			{Name: "service_id", Kind: Int, Rules: "gt=0", Required: true, Sortable: true},
			{Name: "message", Kind: Text},
			{Name: "document", Kind: File, Accept: documents},
			{Name: "status", Kind: Text, Rules: "oneof=pending approved rejected", Sortable: true},
		},
	}
}

// Default returns the catalog of every page of the admin dashboard.
func Default() *Catalog {
	return MustNew(
		Banners(),
		Videos(),
		Galleries(),
		Blogs(),
		Services(),
		Courses(),
		Resources(),
		FAQs(),
		Updates(),
		Applications(),
	)
}
