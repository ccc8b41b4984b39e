// Package catalog loads the tree served by the in-memory device from a
// TOML file.
//
// A catalog lists top-level sources as [[source]] tables. Each table may
// hold [[source.item]] tables, which nest to any depth as
// [[source.item.item]] and so on:
//
//	[[source]]
//	name = "Local Music"
//	sid = "1024"
//	available = "true"
//
//	  [[source.item]]
//	  name = "Albums"
//	  container = "yes"
//	  cid = "albums"
//
//	    [[source.item.item]]
//	    name = "Kind of Blue"
//	    playable = "yes"
//	    mid = "kob"
//
// Attribute values are strings, exactly as the device sends them.
// Items without a sid take their source's.
package catalog

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/heos-cli/internal/adapters/driven/commands/memory"
	"github.com/custodia-labs/heos-cli/internal/core/domain"
)

type document struct {
	Sources []entry `toml:"source"`
}

type entry struct {
	Name            string  `toml:"name"`
	ImageURL        string  `toml:"image_url"`
	Type            string  `toml:"type"`
	SID             string  `toml:"sid"`
	Available       string  `toml:"available"`
	ServiceUsername string  `toml:"service_username"`
	Container       string  `toml:"container"`
	CID             string  `toml:"cid"`
	MID             string  `toml:"mid"`
	Playable        string  `toml:"playable"`
	Items           []entry `toml:"item"`
}

// Load reads and parses a catalog file.
func Load(path string) ([]*memory.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// LoadDevice reads a catalog file and returns a device serving it.
func LoadDevice(path string) (*memory.Device, error) {
	nodes, err := Load(path)
	if err != nil {
		return nil, err
	}
	return memory.NewDevice(nodes)
}

// Parse decodes catalog TOML into device nodes.
func Parse(data []byte) ([]*memory.Node, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse catalog: %v", domain.ErrInvalidInput, err)
	}

	nodes := make([]*memory.Node, 0, len(doc.Sources))
	for i := range doc.Sources {
		node, err := doc.Sources[i].node(doc.Sources[i].SID)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (e *entry) node(sid string) (*memory.Node, error) {
	if e.Name == "" {
		return nil, fmt.Errorf("%w: catalog entry without a name", domain.ErrInvalidInput)
	}
	if e.SID == "" {
		e.SID = sid
	}

	node := &memory.Node{
		Item: domain.RawItem{
			Name:            e.Name,
			ImageURL:        e.ImageURL,
			Type:            e.Type,
			SID:             e.SID,
			Available:       e.Available,
			ServiceUsername: e.ServiceUsername,
			Container:       e.Container,
			CID:             e.CID,
			MID:             e.MID,
			Playable:        e.Playable,
		},
		Children: make([]*memory.Node, 0, len(e.Items)),
	}

	for i := range e.Items {
		child, err := e.Items[i].node(e.SID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}
