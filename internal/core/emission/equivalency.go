package emission

import "math"

// EPA 溫室氣體換算係數（2024 版），換算方式為 kg CO2e / 係數
const (
	// EPAMilesDrivenFactor 一般乘用車每英里排放
	EPAMilesDrivenFactor = 0.192
	// EPASmartphoneChargeFactor 每次手機充滿電的排放
	EPASmartphoneChargeFactor = 0.00822
	// MinEquivalencyThresholdKg 低於此值不提供換算
	MinEquivalencyThresholdKg = 0.001
)

// Equivalents 碳排的日常換算
type Equivalents struct {
	MilesDriven        float64 `json:"miles_driven"`
	SmartphonesCharged float64 `json:"smartphones_charged"`
}

// Equivalence 將總碳排換算為行車里程與手機充電次數，低於門檻回傳 nil
func Equivalence(totalKg float64) *Equivalents {
	if math.IsNaN(totalKg) || math.IsInf(totalKg, 0) || totalKg < MinEquivalencyThresholdKg {
		return nil
	}
	miles := capFinite(totalKg / EPAMilesDrivenFactor)
	if miles < math.MaxFloat64/10 {
		miles = math.Round(miles*10) / 10
	}
	return &Equivalents{
		MilesDriven:        miles,
		SmartphonesCharged: capFinite(math.Round(totalKg / EPASmartphoneChargeFactor)),
	}
}
