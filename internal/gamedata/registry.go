package gamedata

import "errors"

// TileRegistry holds loaded tile definitions keyed by id.
type TileRegistry struct {
	byID map[string]*TileDef
	all  []TileDef
}

// NewTileRegistry creates a registry from loaded tile definitions.
func NewTileRegistry(tiles []TileDef) *TileRegistry {
	registry := &TileRegistry{
		byID: make(map[string]*TileDef, len(tiles)),
		all:  tiles,
	}
	for i := range tiles {
		registry.byID[tiles[i].ID] = &tiles[i]
	}
	return registry
}

// LoadTileRegistry loads and creates a registry from the embedded tiles.json.
func LoadTileRegistry() (*TileRegistry, error) {
	tiles, err := LoadTiles()
	if err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, errors.New("no tiles loaded from tiles.json")
	}
	return NewTileRegistry(tiles), nil
}

// MustLoadTileRegistry loads a registry, panicking on error.
// The tile alphabet is compiled into the binary, so a failure here is a build defect.
func MustLoadTileRegistry() *TileRegistry {
	registry, err := LoadTileRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the tile definition with the given id, or nil if not found.
func (r *TileRegistry) GetByID(id string) *TileDef {
	return r.byID[id]
}

// All returns all tile definitions in file order.
func (r *TileRegistry) All() []TileDef {
	return r.all
}

// Count returns the number of tile definitions in the registry.
func (r *TileRegistry) Count() int {
	return len(r.all)
}
