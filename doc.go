// Package shmsplot fills and plots histograms of spectrometer Monte-Carlo
// ntuples: focal-plane and target-plane positions and angles and the
// momentum deviation, read from a ROOT tree and written as TH1F/TH2F
// objects to a directory of a ROOT file.
//
// Angles in the ntuple are taken to be in radians and are histogrammed in
// milliradians.
package shmsplot
