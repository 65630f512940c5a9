// Package catalog contém as tabelas de referência de commodities e unidades de medida
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// UnitNamer resolve o nome de uma unidade de medida
type UnitNamer interface {
	UnitName(unitID int) string
}

// Reader é a visão somente leitura do catálogo injetada nos componentes
type Reader interface {
	UnitNamer
	CommodityName(code int) string
	CommodityCodes() []int
}

type Commodity struct {
	Code   int    `yaml:"code"`
	Name   string `yaml:"name"`
	UnitID int    `yaml:"unitId"`
}

type Unit struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

type document struct {
	Units       []Unit      `yaml:"units"`
	Commodities []Commodity `yaml:"commodities"`
}

// Catalog é imutável depois de construído
type Catalog struct {
	codes       []int
	commodities map[int]Commodity
	units       map[int]string
}

// Default carrega o catálogo embutido no binário
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// MustDefault é como Default, mas entra em pânico se o catálogo embutido for inválido
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse constrói um catálogo a partir de um documento YAML
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("erro ao decodificar catálogo: %w", err)
	}

	return New(doc.Commodities, doc.Units)
}

// New constrói um catálogo; a ordem de commodities é preservada
func New(commodities []Commodity, units []Unit) (*Catalog, error) {
	c := &Catalog{
		codes:       make([]int, 0, len(commodities)),
		commodities: make(map[int]Commodity, len(commodities)),
		units:       make(map[int]string, len(units)),
	}

	for _, u := range units {
		if _, exists := c.units[u.ID]; exists {
			return nil, fmt.Errorf("unidade duplicada no catálogo: %d", u.ID)
		}
		c.units[u.ID] = u.Name
	}

	for _, com := range commodities {
		if _, exists := c.commodities[com.Code]; exists {
			return nil, fmt.Errorf("commodity duplicada no catálogo: %d", com.Code)
		}
		if _, ok := c.units[com.UnitID]; !ok {
			return nil, fmt.Errorf("commodity %d referencia unidade desconhecida: %d", com.Code, com.UnitID)
		}
		c.codes = append(c.codes, com.Code)
		c.commodities[com.Code] = com
	}

	return c, nil
}

// CommodityName retorna o nome da commodity ou string vazia se o código for desconhecido
func (c *Catalog) CommodityName(code int) string {
	return c.commodities[code].Name
}

// UnitName retorna o nome da unidade ou string vazia se o id for desconhecido
func (c *Catalog) UnitName(unitID int) string {
	return c.units[unitID]
}

// CommodityCodes retorna uma cópia dos códigos na ordem declarada
func (c *Catalog) CommodityCodes() []int {
	codes := make([]int, len(c.codes))
	copy(codes, c.codes)
	return codes
}

// Commodity retorna a definição completa de uma commodity
func (c *Catalog) Commodity(code int) (Commodity, bool) {
	com, ok := c.commodities[code]
	return com, ok
}
