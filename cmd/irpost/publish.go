package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/irpost"
)

// Run executes the publish command.
func (c *PublishCmd) Run(deps *Dependencies) error {
	in := bufio.NewReader(deps.Stdin)

	irURL, err := resolveURL(c.BaseURL, c.IRPath)
	if err != nil {
		return err
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, irURL)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", irURL, err)
	}

	index := deps.News.ExtractNews(html)
	if !index.SectionFound {
		fmt.Fprintf(deps.Stdout, "No %q heading found\n", c.Section)
	}
	if len(index.Entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No timestamps found in the specified section.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d news articles:\n", len(index.Entries))
	for i, entry := range index.Entries {
		switch e := entry.(type) {
		case irpost.ArticleRef:
			fmt.Fprintf(deps.Stdout, "  %d) %s: %s, %s\n", i+1, e.Timestamp, e.Title, e.Href)
		case irpost.BareTimestamp:
			fmt.Fprintf(deps.Stdout, "  %d) %s\n", i+1, e.Timestamp)
		}
	}

	n := c.Select
	if n == 0 {
		fmt.Fprint(deps.Stdout, "\nSelect the article that you want to upload (1):")
		line, err := readLine(in)
		if err != nil {
			return err
		}
		if n, err = parseSelection(line, len(index.Entries)); err != nil {
			return err
		}
	} else if n < 1 || n > len(index.Entries) {
		return irpost.Errorf(irpost.EINVALID, "Invalid selection.")
	}

	ref, ok := index.Entries[n-1].(irpost.ArticleRef)
	if !ok || ref.Href == "" {
		return irpost.Errorf(irpost.EINVALID, "article %d has no link", n)
	}

	articleURL, err := resolveURL(c.BaseURL, ref.Href)
	if err != nil {
		return err
	}

	html, err = deps.Fetcher.Fetch(deps.Ctx, articleURL)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", articleURL, err)
	}

	release := deps.Releases.ExtractRelease(html)
	if release.Empty() {
		return irpost.Errorf(irpost.ENOTFOUND, "no press release found at %s", articleURL)
	}

	post := irpost.NewPost(release, c.Category)
	if err := post.Validate(); err != nil {
		return err
	}

	if err := c.preview(deps, post); err != nil {
		return err
	}

	if c.DryRun {
		fmt.Fprintln(deps.Stdout, "Dry run, not publishing.")
		return nil
	}

	if !c.Yes {
		fmt.Fprint(deps.Stdout, "Publish this post? [y/N]: ")
		line, err := readLine(in)
		if err != nil {
			return err
		}
		if answer := strings.ToLower(line); answer != "y" && answer != "yes" {
			fmt.Fprintln(deps.Stdout, "Aborted.")
			return nil
		}
	}

	published, err := deps.Publisher.Publish(deps.Ctx, post)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Post published successfully to %s\n", published.Link)
	return nil
}

// preview prints the post title and its content as Markdown.
func (c *PublishCmd) preview(deps *Dependencies, post *irpost.Post) error {
	md, err := deps.Converter.Convert(post.Content)
	if err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}
	md = strings.TrimSpace(md)
	if md == "" {
		md = "(no intro or body)"
	}
	fmt.Fprintf(deps.Stdout, "\n# %s\n\n%s\n\n", post.Title, md)
	return nil
}

// parseSelection validates a 1-based article number typed by the operator.
// Only plain digits are accepted; empty input picks the first (newest)
// article.
func parseSelection(input string, count int) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 1, nil
	}
	if strings.TrimLeft(input, "0123456789") != "" {
		return 0, irpost.Errorf(irpost.EINVALID, "Invalid selection.")
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > count {
		return 0, irpost.Errorf(irpost.EINVALID, "Invalid selection.")
	}
	return n, nil
}

// readLine reads one line of operator input. A final line without a
// newline is accepted.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// resolveURL resolves ref, relative or absolute, against base.
func resolveURL(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", irpost.Errorf(irpost.EINVALID, "invalid base URL %q: %v", base, err)
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", irpost.Errorf(irpost.EINVALID, "invalid link %q: %v", ref, err)
	}
	return b.ResolveReference(r).String(), nil
}
