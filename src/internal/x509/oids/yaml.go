// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package oids

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// extraOIDs is the YAML shape for user-supplied OID names:
//
//	oids:
//	  "1.3.6.1.4.1.11129.2.4.2": "CT Precertificate SCTs"
//	  "2.16.840.1.113730.1.13": "Netscape Comment"
type extraOIDs struct {
	OIDs map[string]string `yaml:"oids"`
}

// MergeYAML merges additional OID names from YAML data into the registry.
// Entries replace existing mappings for the same OID.
func (r *Registry) MergeYAML(data []byte) error {
	var extras extraOIDs
	if err := yaml.Unmarshal(data, &extras); err != nil {
		return fmt.Errorf("oids: parsing extra OID names: %w", err)
	}

	for dotted, name := range extras.OIDs {
		oid, err := ParseDotted(dotted)
		if err != nil {
			return err
		}
		r.Register(oid, name)
	}
	return nil
}

// MergeYAMLFile merges additional OID names from a YAML file into the registry.
func (r *Registry) MergeYAMLFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("oids: reading extra OID names: %w", err)
	}
	return r.MergeYAML(data)
}
