package main

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	EXTRACTOR_REGEX    = "regex"
	EXTRACTOR_DOCUMENT = "document"

	SESSION_PLACEHOLDER = "Select Session"
)

// OptionExtractor isola a estratégia de leitura dos <option> da página inicial do portal.
type OptionExtractor interface {
	ExtractOptions(page string) ([]string, error)
}

func NewOptionExtractor(name string) (OptionExtractor, error) {
	switch name {
	case EXTRACTOR_REGEX, "":
		return RegexOptionExtractor{}, nil
	case EXTRACTOR_DOCUMENT:
		return DocumentOptionExtractor{}, nil
	}
	return nil, fmt.Errorf("unknown option extractor: %q", name)
}

var reOption = regexp.MustCompile(`<option[^>]*>([^<]*)</option>`)

// RegexOptionExtractor varre o texto cru. Só pega opções cujo conteúdo não tem tags,
// e não decodifica entidades.
type RegexOptionExtractor struct{}

func (RegexOptionExtractor) ExtractOptions(page string) ([]string, error) {
	matches := reOption.FindAllStringSubmatch(page, -1)
	labels := make([]string, 0, len(matches))
	for _, m := range matches {
		labels = append(labels, m[1])
	}
	return labels, nil
}

// DocumentOptionExtractor usa o parser HTML de verdade e junta só os nós de texto diretos de cada <option>.
type DocumentOptionExtractor struct{}

func (DocumentOptionExtractor) ExtractOptions(page string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parsing landing page: %w", err)
	}

	labels := []string{}
	doc.Find("option").Each(func(i int, opt *goquery.Selection) {
		var text strings.Builder
		opt.Contents().Each(func(j int, s *goquery.Selection) {
			if s.Get(0) != nil && s.Get(0).Type == html.TextNode {
				text.WriteString(s.Text())
			}
		})
		labels = append(labels, text.String())
	})
	return labels, nil
}

// ScrapeSessions baixa a página inicial do portal e monta a lista de sessões disponíveis.
func ScrapeSessions(ctx context.Context, client *BputClient, extractor OptionExtractor, landingURL string) ([]SessionListing, error) {
	page, err := client.FetchPage(ctx, landingURL)
	if err != nil {
		return nil, err
	}
	labels, err := extractor.ExtractOptions(page)
	if err != nil {
		return nil, err
	}
	return sessionListings(labels), nil
}

func sessionListings(labels []string) []SessionListing {
	sessions := []SessionListing{}
	for _, label := range labels {
		name := strings.TrimSpace(label)
		if name == SESSION_PLACEHOLDER {
			continue
		}
		sessions = append(sessions, SessionListing{Name: name, ShortCode: ShortCode(name)})
	}
	return sessions
}
