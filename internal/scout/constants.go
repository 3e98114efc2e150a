package scout

// Values the upstream API expects verbatim. They are configuration drift
// inherited from the platform; keeping them in one place makes that
// visible instead of scattering literals through request builders.
const (
	// appFCMToken is the placeholder notification token sent with app logins.
	appFCMToken = "fcmToken"

	// coachSwitchFCMToken is the fixed body value the coach switch expects.
	coachSwitchFCMToken = "string"

	// uniqueEntryCode gates affiliation registration.
	// TODO: make this configurable once a second federation is onboarded.
	uniqueEntryCode = "SenegalNOC"

	// proClubSignedDate is the signing date stamped on every signing.
	proClubSignedDate = "2024-02-28"
)

// Defaults for presigned upload requests.
const (
	defaultFileEntityType = 30
	defaultFileMediaType  = 2
)
