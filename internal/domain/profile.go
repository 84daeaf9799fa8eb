package domain

// MobilityProfile is the closed set of supported mobility profiles.
// The profile decides the directions mode and which synthetic hazards
// supplement sparse community data.
type MobilityProfile string

const (
	ProfileWheelchair MobilityProfile = "Wheelchair"
	ProfileWalker     MobilityProfile = "Walker"
	ProfileTemporary  MobilityProfile = "Temporary"
	ProfileFatigue    MobilityProfile = "Fatigue"
	ProfileCognitive  MobilityProfile = "Cognitive"
	ProfileElderly    MobilityProfile = "Elderly"
	ProfileCaregiver  MobilityProfile = "Caregiver"

	// ProfileNone is the zero value for anonymous/standard routing.
	ProfileNone MobilityProfile = ""
)

const (
	ModeWalking = "walking"
	ModeDriving = "driving"
)

var mobilityProfiles = map[MobilityProfile]bool{
	ProfileWheelchair: true,
	ProfileWalker:     true,
	ProfileTemporary:  true,
	ProfileFatigue:    true,
	ProfileCognitive:  true,
	ProfileElderly:    true,
	ProfileCaregiver:  true,
}

// ParseMobilityProfile validates a raw profile tag at the boundary.
// Unknown tags map to ProfileNone so route planning still succeeds,
// just without profile-specific supplements.
func ParseMobilityProfile(s string) (MobilityProfile, bool) {
	p := MobilityProfile(s)
	if mobilityProfiles[p] {
		return p, true
	}
	return ProfileNone, s == ""
}

func IsValidMobilityProfile(s string) bool {
	return mobilityProfiles[MobilityProfile(s)]
}

// DirectionsMode returns the routing mode the directions provider
// should use for this profile.
func (p MobilityProfile) DirectionsMode() string {
	switch p {
	case ProfileWheelchair, ProfileWalker, ProfileTemporary, ProfileFatigue:
		return ModeWalking
	default:
		return ModeDriving
	}
}
