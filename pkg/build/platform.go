// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package build

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/consensys/go-rvfi/pkg/netlist"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SOURCES_MANIFEST is the name of the file listing the sources of a design.
const SOURCES_MANIFEST = "sources.txt"

// Platform records the external sources required to build a design.  Sources
// are kept in the order they were first registered, and registering the same
// source more than once has no further effect.
type Platform struct {
	name    string
	sources []string
	seen    map[string]bool
}

// NewPlatform constructs a platform with no registered sources.
func NewPlatform(name string) *Platform {
	return &Platform{name, nil, make(map[string]bool)}
}

// Name returns the name of this platform.
func (p *Platform) Name() string {
	return p.name
}

// AddSource registers an external source file.
func (p *Platform) AddSource(path string) {
	if p.seen[path] {
		log.Debugf("source %s already registered", path)
		return
	}
	//
	p.seen[path] = true
	p.sources = append(p.sources, path)
}

// Sources returns the registered sources, in registration order.
func (p *Platform) Sources() []string {
	return append([]string(nil), p.sources...)
}

// Write writes a given design into a directory, consisting of the design
// itself (as Verilog) and a manifest of the external sources it requires.  The
// directory is created if it does not already exist.
func (p *Platform) Write(dir string, module *netlist.Module) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}
	// Write out design
	design := filepath.Join(dir, module.Name()+".v")
	//
	file, err := os.Create(design)
	if err != nil {
		return errors.Wrapf(err, "creating %s", design)
	}
	//
	if err = netlist.WriteVerilog(file, module); err != nil {
		file.Close()
		return err
	} else if err = file.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", design)
	}
	// Write out manifest
	manifest := filepath.Join(dir, SOURCES_MANIFEST)
	contents := strings.Join(append(p.Sources(), design), "\n") + "\n"
	//
	if err := os.WriteFile(manifest, []byte(contents), 0644); err != nil {
		return errors.Wrapf(err, "writing %s", manifest)
	}
	//
	log.Debugf("wrote %s with %d sources", design, len(p.sources)+1)
	//
	return nil
}
