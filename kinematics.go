package shmsplot

import "math"

const (
	ProtonMass = 0.938272 // GeV
	Rad2Mrad   = 1000.0
)

// CalcQ2 returns the four-momentum transfer squared (GeV^2) for an electron
// of beamEnergy scattered with momentum scatMom at scatAngle (rad).
func CalcQ2(beamEnergy, scatMom, scatAngle float64) float64 {
	return 2 * beamEnergy * scatMom * (1 - math.Cos(scatAngle))
}

// CalcW2 returns the invariant mass squared (GeV^2) of the hadronic final
// state for scattering off a proton at rest.
func CalcW2(beamEnergy, scatMom, scatAngle float64) float64 {
	return ProtonMass*ProtonMass + 2*ProtonMass*(beamEnergy-scatMom) - CalcQ2(beamEnergy, scatMom, scatAngle)
}
