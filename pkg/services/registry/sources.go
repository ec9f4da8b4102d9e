package registry

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/Dogecat0/Aperilex-sub002/pkg/store/client"
)

// SourceRegistry resolves named analysis-source profiles from an ini
// file, one section per source.
type SourceRegistry interface {
	GetProfiles() ([]string, error)
	GetConfig(profile string) (*client.Config, error)
}

type sourceRegistry struct {
	cfg *ini.File
}

func NewSourceRegistry(path string) (SourceRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &sourceRegistry{cfg: cfg}, nil
}

func (sr *sourceRegistry) GetProfiles() ([]string, error) {
	var profiles []string
	for _, section := range sr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (sr *sourceRegistry) GetConfig(profile string) (*client.Config, error) {
	section := sr.cfg.Section(profile)
	if section == nil || len(section.Keys()) == 0 {
		return nil, fmt.Errorf("source profile %s not found", profile)
	}

	baseURL := section.Key("base_url").String()
	if baseURL == "" {
		return nil, fmt.Errorf("source profile %s has no base_url", profile)
	}

	return &client.Config{
		BaseURL:   baseURL,
		UserAgent: section.Key("user_agent").String(),
		Token:     section.Key("token").String(),
	}, nil
}
