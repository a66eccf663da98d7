package inkstone

// Paginator holds one page of a collection view along with the numbers a
// template needs to render pagination controls.
type Paginator struct {
	TotalPages       int
	CurrentPage      int
	NextPage         int
	PrevPage         int
	PageSize         int
	HasNext          bool
	HasPrev          bool
	HasPosts         bool
	TotalPosts       int
	Posts            []*Post
	FeaturedPosts    []*Post
	NonFeaturedPosts []*Post
}

// NewPaginator slices one page out of a collection view, such as
// Collection.Published or Collection.ByTag. With splitFeatured set, the
// page's posts are additionally split into featured and non-featured lists.
func NewPaginator(view []*Post, page, size int, splitFeatured bool) Paginator {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	total := len(view)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	posts := view[start:end]

	nextPage := page + 1
	if nextPage > totalPages {
		nextPage = totalPages
	}
	prevPage := page - 1
	if prevPage < 1 {
		prevPage = 1
	}

	featured := make([]*Post, 0)
	nonFeatured := make([]*Post, 0)
	if splitFeatured {
		for _, post := range posts {
			if post.Featured {
				featured = append(featured, post)
			} else {
				nonFeatured = append(nonFeatured, post)
			}
		}
	} else {
		nonFeatured = posts
	}

	return Paginator{
		TotalPages:       totalPages,
		CurrentPage:      page,
		NextPage:         nextPage,
		PrevPage:         prevPage,
		PageSize:         size,
		HasNext:          page < totalPages,
		HasPrev:          page > 1,
		HasPosts:         len(posts) > 0,
		TotalPosts:       total,
		Posts:            posts,
		FeaturedPosts:    featured,
		NonFeaturedPosts: nonFeatured,
	}
}
