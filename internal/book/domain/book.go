package domain

type Book struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	PublishYear int     `json:"publish_year"`
}

// Seed returns the catalog the service starts with.
func Seed() []Book {
	return []Book{
		{ID: 1, Title: "Apache Spark", Author: "Elon Musk", Description: "Details on Apache spark systems", Rating: 4.5, PublishYear: 2009},
		{ID: 2, Title: "Arrow and DuckDB", Author: "Jeff Bezos", Description: "Using DuckDB in modern systems", Rating: 4.0, PublishYear: 2022},
		{ID: 3, Title: "Imran Khan", Author: "PTI Official", Description: "Life of Imran Khan and 1992 Worldcup", Rating: 4.7, PublishYear: 2012},
		{ID: 4, Title: "Mastering AWS and Cloud", Author: "Jeff Bezos", Description: "AWS cloud infrastructure and cloud concepts", Rating: 4.2, PublishYear: 2015},
	}
}
