// lattice-dump loads a YAML device composition and prints every
// descriptor attribute of every endpoint as encoded on the wire.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lattice-home/lattice-go/pkg/compose"
	"github.com/lattice-home/lattice-go/pkg/descriptor"
	"github.com/lattice-home/lattice-go/pkg/interaction"
	"github.com/lattice-home/lattice-go/pkg/log"
	"github.com/lattice-home/lattice-go/pkg/model"
	"github.com/lattice-home/lattice-go/pkg/persistence"
	"github.com/lattice-home/lattice-go/pkg/wire"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML composition file (required)")
	statePath := flag.String("state", "", "path to the data-version state file (optional)")
	verbose := flag.Bool("verbose", false, "log protocol events to stderr")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "lattice-dump: -config is required")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*configPath, *statePath, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "lattice-dump: %v\n", err)
		os.Exit(1)
	}
}

// dumpAttrs is the read order per endpoint: the four descriptor lists,
// then the globals.
var dumpAttrs = []uint16{
	uint16(descriptor.AttrDeviceTypeList),
	uint16(descriptor.AttrServerList),
	uint16(descriptor.AttrClientList),
	uint16(descriptor.AttrPartsList),
	model.AttrIDFeatureMap,
	model.AttrIDAttributeList,
	model.AttrIDClusterRevision,
}

func run(configPath, statePath string, verbose bool) error {
	cfg, err := compose.Load(configPath)
	if err != nil {
		return err
	}

	node, err := cfg.BuildNode()
	if err != nil {
		return err
	}
	matcher, err := cfg.BuildMatcher()
	if err != nil {
		return err
	}

	var logger log.Logger
	if verbose {
		slogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		logger = log.NewSlogAdapter(slogger)
	}

	var store *persistence.VersionStore
	var state *persistence.VersionState
	if statePath != "" {
		store = persistence.NewVersionStore(statePath)
		state, err = store.Load()
		if err != nil {
			return fmt.Errorf("failed to load version state: %w", err)
		}
	}
	if state == nil {
		state = &persistence.VersionState{}
	}
	if state.DataVersions == nil {
		state.DataVersions = make(map[string]uint32)
	}

	server := interaction.NewServer(node, logger)
	clusters := make(map[model.EndpointID]*descriptor.Cluster, node.EndpointCount())

	for _, ep := range node.Endpoints() {
		dv := model.NewDataver()
		if stored, ok := state.DataVersions[persistence.Key(ep.ID, descriptor.ClusterID)]; ok {
			dv = model.NewDataverWith(stored)
		}
		cluster := descriptor.NewClusterMatching(matcher, dv)
		if err := server.Register(ep.ID, descriptor.ClusterID, cluster); err != nil {
			return err
		}
		clusters[ep.ID] = cluster
	}

	ctx := context.Background()
	msgID := uint32(1)
	for _, ep := range node.Endpoints() {
		fmt.Printf("endpoint %d (device type 0x%04X rev %d)\n",
			ep.ID, uint32(ep.DeviceType.ID), ep.DeviceType.Revision)

		for _, attrID := range dumpAttrs {
			req := &wire.ReadRequest{
				MessageID:   msgID,
				EndpointID:  uint16(ep.ID),
				ClusterID:   uint32(descriptor.ClusterID),
				AttributeID: attrID,
			}
			msgID++

			resp := server.HandleRead(ctx, req)
			if resp.Status.IsError() {
				fmt.Printf("  %-18s %s\n", attrName(attrID), resp.Status)
				continue
			}
			fmt.Printf("  %-18s dataver=%d  %s\n",
				attrName(attrID), resp.Report.DataVersion, hex.EncodeToString(resp.Report.Value))
		}
	}

	if store != nil {
		for id, cluster := range clusters {
			state.DataVersions[persistence.Key(id, descriptor.ClusterID)] = cluster.DataVersion()
		}
		if err := store.Save(state); err != nil {
			return fmt.Errorf("failed to save version state: %w", err)
		}
	}
	return nil
}

func attrName(id uint16) string {
	switch id {
	case model.AttrIDFeatureMap:
		return "featureMap"
	case model.AttrIDAttributeList:
		return "attributeList"
	case model.AttrIDClusterRevision:
		return "clusterRevision"
	default:
		attr, err := descriptor.AttributeFromID(id)
		if err != nil {
			return fmt.Sprintf("attr %#04x", id)
		}
		return attr.String()
	}
}
