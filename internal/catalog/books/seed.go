package books

import "catalog-backend/internal/catalog/model"

// DefaultSeed は初期表示用のサンプル蔵書
func DefaultSeed() []model.Book {
	return []model.Book{
		{
			ID:              "1",
			Title:           "To Kill a Mockingbird",
			Author:          "Harper Lee",
			ISBN:            "9780061120084",
			PublishedDate:   "1960-07-11",
			Genre:           model.GenreFiction,
			CopiesAvailable: 3,
		},
		{
			ID:              "2",
			Title:           "Principles of Physics",
			Author:          "David Halliday",
			ISBN:            "9780470524633",
			PublishedDate:   "2010-06-14",
			Genre:           model.GenreAcademic,
			CopiesAvailable: 5,
		},
		{
			ID:              "3",
			Title:           "1984",
			Author:          "George Orwell",
			ISBN:            "9780451524935",
			PublishedDate:   "1949-06-08",
			Genre:           model.GenreFiction,
			CopiesAvailable: 2,
		},
	}
}
