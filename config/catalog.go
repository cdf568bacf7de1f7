package config

import (
	"fmt"
	"os"

	"github.com/BASIN-3D/basin3d/catalog"
	"github.com/BASIN-3D/basin3d/errors"
	"github.com/BASIN-3D/basin3d/provider"
)

// BuildCatalog loads the variable vocabulary and every datasource's mapping
// table declared by the manifest into a new catalog. It returns the loaded
// catalog and the declared data sources in manifest order.
func BuildCatalog(cfg *Config, opts ...catalog.Option) (*catalog.Catalog, []provider.DataSource, error) {
	cat := catalog.New(opts...)

	vf, err := os.Open(cfg.resolve(cfg.Vocabulary.VariablesFile))
	if err != nil {
		return nil, nil, errors.WrapFatal(err, "config", "BuildCatalog", "open variables file")
	}
	loadErr := cat.LoadVariablesCSV(vf)
	vf.Close()
	if loadErr != nil {
		return nil, nil, loadErr
	}

	sources := make([]provider.DataSource, 0, len(cfg.Datasources))
	for _, dc := range cfg.Datasources {
		ds := dc.DataSource()
		mf, err := os.Open(cfg.resolve(dc.MappingFile))
		if err != nil {
			return nil, nil, errors.WrapFatal(err, "config", "BuildCatalog",
				fmt.Sprintf("open mapping file for datasource %q", ds.ID))
		}
		loadErr := cat.LoadCSV(ds, mf)
		mf.Close()
		if loadErr != nil {
			return nil, nil, loadErr
		}
		sources = append(sources, ds)
	}
	return cat, sources, nil
}
