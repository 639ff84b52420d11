package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/irpost"
)

// Dependencies holds all services and I/O streams for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Fetcher   irpost.Fetcher
	News      irpost.NewsExtractor
	Releases  irpost.ReleaseExtractor
	Converter irpost.Converter

	// Publisher is nil in dry-run mode.
	Publisher irpost.Publisher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL  string `name:"base-url" env:"IRPOST_BASE_URL" default:"https://www.spotlightstockmarket.com" help:"Stock exchange site the IR page and article links are resolved against"`
	IRPath   string `name:"ir-path" env:"IRPOST_IR_PATH" default:"/sv/bolag/irabout?InstrumentId=XSAT01001277" help:"Path of the company's investor-relations page"`
	Endpoint string `name:"endpoint" env:"IRPOST_WP_ENDPOINT" default:"https://envirologic.se/wp-json/wp/v2/posts" help:"WordPress posts endpoint"`
	Username string `name:"username" env:"IRPOST_WP_USERNAME" help:"WordPress user"`
	Password string `name:"password" env:"IRPOST_WP_APP_PASSWORD" help:"WordPress application password"`
	Category int    `name:"category" env:"IRPOST_WP_CATEGORY" default:"9" help:"WordPress category ID for the post"`

	Section       string `name:"section" default:"Nyheter" help:"Heading text of the news section"`
	CompanyPrefix string `name:"company-prefix" default:"Envirologic AB:" help:"Prefix of the press release title heading"`

	Select  int           `short:"s" help:"Article number to publish instead of prompting"`
	Yes     bool          `short:"y" help:"Publish without asking for confirmation"`
	DryRun  bool          `name:"dry-run" help:"Show the post without publishing it"`
	Render  bool          `help:"Render pages in headless Chrome before extracting"`
	Verbose bool          `short:"v" help:"Log every step to stderr"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Rate    float64       `default:"1" help:"Maximum requests per second to the stock exchange site"`
}

// PublishCmd runs one fetch, select, extract and publish cycle.
type PublishCmd struct {
	BaseURL  string
	IRPath   string
	Category int
	Section  string
	Select   int
	Yes      bool
	DryRun   bool
}
