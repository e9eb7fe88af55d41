/*
 * provider.go, part of gosurf.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package vib

import (
	"path/filepath"
	"sync"
)

//Provider reads vibrational data files and gives the corrections obtained
//from them. Each file is read only once. A Provider is safe for concurrent use.
type Provider struct {
	dir   string
	mu    sync.Mutex
	cache map[string]*Data
}

//NewProvider returns a Provider that reads relative paths from the directory dir.
func NewProvider(dir string) *Provider {
	return &Provider{dir: dir, cache: make(map[string]*Data)}
}

//Data returns the vibrational data in the file source.
func (p *Provider) Data(source string) (*Data, error) {
	path := source
	if !filepath.IsAbs(path) && p.dir != "" {
		path = filepath.Join(p.dir, path)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if d, ok := p.cache[path]; ok {
		return d, nil
	}
	d, err := Read(path)
	if err != nil {
		return nil, errDecorate(err, "Provider.Data")
	}
	p.cache[path] = d
	return d, nil
}

//Vib returns the zero point energy, and the vibrational entropy and free energy at
//each temperature in temps, obtained from the file source, all per formula unit.
func (p *Provider) Vib(source string, temps []float64) (float64, []float64, []float64, error) {
	d, err := p.Data(source)
	if err != nil {
		return 0, nil, nil, errDecorate(err, "Provider.Vib")
	}
	return ZPE(d), Entropy(d, temps), FreeEnergy(d, temps), nil
}
