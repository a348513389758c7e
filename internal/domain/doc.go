// Package domain models asteroid impact consequences with closed-form,
// deliberately simplified estimators.
//
// # Pipeline
//
// An impact is described by [ImpactParameters] (diameter, entry velocity,
// bulk density, ground-zero coordinates). [AnalyzeImpact] chains the
// estimators below and returns one [ImpactAnalysis]:
//
//	ComputeEnergy      diameter, velocity, density  →  EnergyResult (kt, Mt, J, TJ, Hiroshimas)
//	ComputeDamageRadii kilotons                     →  DamageRadii (km)
//	ClassifyImpact     lat, lng                     →  OCEAN | LAND
//	EstimateTsunamiRisk       kilotons, ocean?              →  TsunamiRisk
//	EstimateSeismicActivity   kilotons                      →  SeismicActivity
//	EstimateAtmosphericEffect kilotons, diameter            →  AtmosphericEffect
//	EstimateFireRisk          kilotons, fireball radius     →  FireRisk
//	EstimatePopulationAtRisk  radii, lat, lng               →  PopulationEstimate
//	CompareWithHistory kilotons                     →  nearest reference event + severity
//
// Every estimator is a pure function of its arguments. None of them reads
// another estimator's output, so they may be called independently.
//
// # Units
//
//	1 kt TNT = 4.184e12 J
//	Hiroshima ≈ 15 kt
//	Scene unit (visualization) = 1000 km
//
// # Damage radii
//
// Radii use cube-root scaling of yield, R = C · E^(1/3) with E in kilotons
// and R in kilometers:
//
//	total 0.5 | severe 1.0 | moderate 1.5 | light 3.0 | thermal 2.5 | fireball 0.8
//
// # Crater sizing
//
// [EstimateCrater] is a separate empirical chain used only to size the crater
// mesh on the globe. Its transient diameter law, 0.032 · E^(1/3.4) with E in
// joules, does not agree with the cube-root damage radii above. Both laws are
// kept as-is; they answer different questions and have never been reconciled.
//
// # Geography
//
// Ocean detection is band based (Pacific-like, Atlantic-like, Indian-like
// longitude/latitude windows), not a coastline lookup. Many coastal cities,
// New York included, fall inside an ocean band. See [ClassifyImpact].
//
// # Errors
//
// Non-finite or non-positive physical inputs and out-of-range coordinates are
// rejected with a [*ParameterError] wrapping [ErrInvalidParameter]. Energy is
// clamped to ≥0 before any root or logarithm so no NaN or Inf reaches a result.
package domain
