// Package report assembles the human-readable text each tool returns.
// Builders pull typed values out of the provider envelope, run them
// through the classification tables, and concatenate the final report.
package report

import (
	"fmt"
	"net/url"

	"github.com/shuowang-ai/Weather-MCP/internal/caiyun"
	"github.com/shuowang-ai/Weather-MCP/internal/config"
)

const sectionDelimiter = "------------------------"

// Outcome distinguishes "here is your report" from "the provider has
// nothing for this location" without abusing the error return for
// control flow. Hard failures travel as ordinary errors.
type Outcome struct {
	text        string
	unavailable bool
}

func OK(text string) Outcome {
	return Outcome{text: text}
}

func Unavailable(reason string) Outcome {
	return Outcome{text: reason, unavailable: true}
}

// Text returns the user-facing body for both variants.
func (o Outcome) Text() string { return o.text }

// IsUnavailable reports whether the provider lacked the requested
// sub-feature for this location.
func (o Outcome) IsUnavailable() bool { return o.unavailable }

// Service holds the collaborators every builder needs. Builders are
// stateless; the only shared mutable state is the stats record inside
// the clients.
type Service struct {
	cfg     *config.AppConfig
	client  *caiyun.Client
	station *caiyun.StationClient
}

func NewService(cfg *config.AppConfig, client *caiyun.Client, station *caiyun.StationClient) *Service {
	return &Service{
		cfg:     cfg,
		client:  client,
		station: station,
	}
}

// weatherURL validates the token and builds the endpoint URL for the
// primary provider.
func (s *Service) weatherURL(lng, lat float64, endpoint string) (string, error) {
	token, err := s.cfg.ValidateToken()
	if err != nil {
		return "", err
	}
	return s.client.EndpointURL(token, lng, lat, endpoint), nil
}

// langParams returns the base query parameters every call carries.
func (s *Service) langParams() url.Values {
	v := url.Values{}
	v.Set("lang", s.cfg.DefaultLang)
	return v
}

// icon returns the emoji when emoji output is enabled, otherwise "".
func (s *Service) icon(emoji string) string {
	if s.cfg.UseEmoji {
		return emoji
	}
	return ""
}

// fail wraps a builder failure with the name of the attempted operation
// so the caller-facing message says what broke, not how.
func fail(operation string, err error) error {
	return fmt.Errorf("%s: %w", operation, err)
}
