package gota

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/cycle"
	"github.com/evdnx/gota/indicator/momentum"
	"github.com/evdnx/gota/indicator/pattern"
	"github.com/evdnx/gota/indicator/stats"
	"github.com/evdnx/gota/indicator/trend"
	"github.com/evdnx/gota/indicator/vector"
	"github.com/evdnx/gota/indicator/volatility"
)

// ---- Shared data model ----
type (
	Result    = core.Result
	IntResult = core.IntResult
	Code      = core.Code
	Error     = core.Error
	PlotData  = core.PlotData
)

// ---- Configuration ----
type (
	Settings   = config.Settings
	Compat     = config.Compat
	UnstableID = config.UnstableID
)

const (
	CompatDefault   = config.CompatDefault
	CompatMetastock = config.CompatMetastock
)

// ---- Moving averages ----
type MAType = core.MAType

const (
	SMA   = core.SMA
	EMA   = core.EMA
	WMA   = core.WMA
	DEMA  = core.DEMA
	TEMA  = core.TEMA
	TRIMA = core.TRIMA
	KAMA  = core.KAMA
	MAMA  = core.MAMA
	T3    = core.T3
)

// ---- Multi-output results and parameter sets ----
type (
	MAMAResult        = trend.MAMAResult
	SARExtParams      = trend.SARExtParams
	SARExtResult      = trend.SARExtResult
	MACDParams        = momentum.MACDParams
	MACDResult        = momentum.MACDResult
	PriceOscParams    = momentum.PriceOscParams
	StochParams       = momentum.StochParams
	StochFParams      = momentum.StochFParams
	StochRSIParams    = momentum.StochRSIParams
	StochResult       = momentum.StochResult
	AroonResult       = momentum.AroonResult
	BBandsParams      = volatility.BBandsParams
	BBandsResult      = volatility.BBandsResult
	MinMaxResult      = stats.MinMaxResult
	MinMaxIndexResult = stats.MinMaxIndexResult
	PhasorResult      = cycle.PhasorResult
	SineResult        = cycle.SineResult
	Transform         = vector.Transform
	Pattern           = pattern.ID
	CandleSettings    = pattern.CandleSettings
)

// Default parameter sets.
var (
	DefaultSARExtParams   = trend.DefaultSARExtParams
	DefaultMACDParams     = momentum.DefaultMACDParams
	DefaultPriceOscParams = momentum.DefaultPriceOscParams
	DefaultStochParams    = momentum.DefaultStochParams
	DefaultStochFParams   = momentum.DefaultStochFParams
	DefaultStochRSIParams = momentum.DefaultStochRSIParams
	DefaultBBandsParams   = volatility.DefaultBBandsParams
	DefaultCandleSettings = pattern.DefaultCandleSettings
)

// ---- Export helpers ----

func GenerateTimestamps(startTime int64, count int, interval int64) []int64 {
	return core.GenerateTimestamps(startTime, count, interval)
}

func PlotFromResult(name string, r Result, timestamps []int64) (PlotData, error) {
	return core.PlotFromResult(name, r, timestamps)
}

func FormatPlotDataJSON(data []PlotData) (string, error) {
	return core.FormatPlotDataJSON(data)
}

func FormatPlotDataCSV(data []PlotData) (string, error) {
	return core.FormatPlotDataCSV(data)
}
