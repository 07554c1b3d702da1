package model

// Image is a single cat picture as returned by the upstream search API.
type Image struct {
	URL string `json:"url"`
}

// PageProps is what the initial render hook hands to the page template.
type PageProps struct {
	InitialImageURL string `json:"initialImageUrl"`
}
