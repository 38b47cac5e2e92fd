package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/devtext/texttools/config"
)

// ConfigPath returns the path to the user's rule set file.
func ConfigPath() (string, error) {
	return xdg.ConfigFile(filepath.Join("texttools", "config.yaml"))
}

// projectConfigName is an optional rule set file in the working directory.
// When present, its rules are merged on top of the user-level config, so a
// project can pin its own RHP/TTO profiles without editing the XDG config.
const projectConfigName = ".texttools.yaml"

// LoadOrCreateConfig loads the rule set from disk, writing the default rule
// set first if no config file exists yet. A project-local config, if
// present in the working directory, is merged on top of it.
func LoadOrCreateConfig(forceDefault bool) (config.RuleSet, error) {
	var data []byte
	if forceDefault {
		log.Printf("using default config\n")
		data = DefaultConfigYaml
	} else {
		path, err := ConfigPath()
		if err != nil {
			return config.RuleSet{}, err
		}

		log.Printf("loading config from %q\n", path)
		userData, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			log.Printf("writing default config to %q\n", path)
			if err := saveDefaultConfig(path); err != nil {
				return config.RuleSet{}, fmt.Errorf("writing default config to %q: %w", path, err)
			}
			userData = DefaultConfigYaml
		} else if err != nil {
			return config.RuleSet{}, fmt.Errorf("loading config from %q: %w", path, err)
		}
		data = userData
	}

	merged, err := mergeProjectConfig(data)
	if err != nil {
		return config.RuleSet{}, err
	}

	ruleSet, err := unmarshalRuleSet(merged)
	if err != nil {
		return config.RuleSet{}, err
	}

	if err := ruleSet.Validate(); err != nil {
		path, _ := ConfigPath()
		helpMsg := fmt.Sprintf("to edit the config, try\n\t$EDITOR %s", path)
		return config.RuleSet{}, fmt.Errorf("invalid configuration: %s\n%s", err.Error(), helpMsg)
	}

	return ruleSet, nil
}

// mergeProjectConfig folds projectConfigName's rules, if the file exists in
// the working directory, on top of userData's rules via
// config.MergeRecursive: both files are decoded to their raw []interface{}
// form first, since MergeRecursive's slice handling (append overlay after
// base) is what gives the project file's rules priority in
// RuleSet.ConfigForPath's later-rule-wins ordering, without this function
// needing to know anything about the Rule struct's fields.
func mergeProjectConfig(userData []byte) ([]byte, error) {
	projectData, err := os.ReadFile(projectConfigName)
	if os.IsNotExist(err) {
		return userData, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading %q: %w", projectConfigName, err)
	}

	var userRaw, projectRaw []interface{}
	if err := yaml.Unmarshal(userData, &userRaw); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal user config: %w", err)
	}
	if err := yaml.Unmarshal(projectData, &projectRaw); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal %q: %w", projectConfigName, err)
	}

	merged := config.MergeRecursive(userRaw, projectRaw)
	out, err := yaml.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("yaml.Marshal merged config: %w", err)
	}
	return out, nil
}

func unmarshalRuleSet(data []byte) (config.RuleSet, error) {
	var rules []config.Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return config.RuleSet{}, fmt.Errorf("yaml.Unmarshal: %w", err)
	}
	return config.RuleSet{Rules: rules}, nil
}

// saveDefaultConfig writes the built-in default rule set to path via
// config.SaveRuleSet, which marshals as JSON; since JSON is valid YAML,
// LoadOrCreateConfig's yaml.Unmarshal reads it back without trouble.
func saveDefaultConfig(path string) error {
	ruleSet, err := unmarshalRuleSet(DefaultConfigYaml)
	if err != nil {
		return fmt.Errorf("unmarshaling default config: %w", err)
	}
	return config.SaveRuleSet(path, ruleSet)
}
