package models

// Photo is one item of the gallery listing.
type Photo struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	URL         string `json:"url"`
	DownloadURL string `json:"download_url"`
}

// FetchStatus is the lifecycle of the last gallery request.
type FetchStatus string

const (
	FetchInitial FetchStatus = "INITIAL"
	FetchLoading FetchStatus = "LOADING"
	FetchSuccess FetchStatus = "SUCCESS"
	FetchFail    FetchStatus = "FAIL"
)
