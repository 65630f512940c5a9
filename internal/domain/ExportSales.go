// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"time"
)

// WeeklyRecord representa um registro semanal de vendas de exportação de uma commodity
type WeeklyRecord struct {
	CommodityCode  int
	WeekEndingDate time.Time
	GrossNewSales  float64
	UnitID         int
}

// MonthKey identifica um mês do calendário; a comparação é puramente numérica em (ano, mês)
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthKeyOf retorna o mês do calendário em que a data cai, sem conversão de fuso
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// Start retorna o primeiro instante do mês em UTC
func (k MonthKey) Start() time.Time {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Before informa se k é anterior a other
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// String formata a chave como "ano-mês", sem zero à esquerda (ex: 2023-1)
func (k MonthKey) String() string {
	return fmt.Sprintf("%d-%d", k.Year, int(k.Month))
}

// MonthlyBucket acumula as vendas de um mês para uma única commodity
type MonthlyBucket struct {
	Key        MonthKey
	TotalSales float64
	UnitName   string
}

// MonthlyPoint é a forma pública de um MonthlyBucket depois da seleção da janela
type MonthlyPoint struct {
	Date          string  `json:"date"` // Formato ano-mês (ex: 2023-2)
	GrossNewSales float64 `json:"grossNewSales"`
	UnitName      string  `json:"unitName"`
}

type CommodityResult struct {
	CommodityCode    int            `json:"commodityCode"`
	CommodityName    string         `json:"commodityName"`
	Data             []MonthlyPoint `json:"data"` // Do mais recente para o mais antigo
	CumulativeChange Metric         `json:"cumulativeChange"`
}
