package configuration

import (
	"time"
)

type Configuration struct {
	HttpAddr          string        `usage:"HTTP address"`
	SourceURL         string        `usage:"URL serving the full record list as JSON"`
	SourceFile        string        `usage:"local JSON file with the record list, takes precedence over the URL"`
	SourceFilter      string        `usage:"JSON filter applied to fetched records, e.g. {\"userId\":1}"`
	FetchTimeout      time.Duration `usage:"timeout for fetching the record list"`
	PageSize          int           `usage:"initial page size"`
	NextID            int           `usage:"first id issued to locally created records"`
	AuthorID          int           `usage:"author id assigned to locally created records"`
	ApiKey            string        `usage:"API key, empty disables authentication"`
	ApiSecret         string        `usage:"API secret"`
	EnableCompression bool          `usage:"gzip responses when the client accepts it"`
	Version           bool          `usage:"show version and exit"`
	ShowConfig        bool          `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:          "127.0.0.1:8080",
		SourceURL:         "https://jsonplaceholder.typicode.com/posts",
		FetchTimeout:      10 * time.Second,
		PageSize:          10,
		NextID:            1000,
		AuthorID:          1,
		EnableCompression: true,
	}
}
