package mock

import "github.com/fwojciec/irpost"

var _ irpost.Converter = (*Converter)(nil)

// Converter is a mock implementation of irpost.Converter that records the
// post content of every preview it renders.
type Converter struct {
	ConvertFn func(html string) (string, error)

	Previewed []string
}

func (c *Converter) Convert(html string) (string, error) {
	c.Previewed = append(c.Previewed, html)
	return c.ConvertFn(html)
}
