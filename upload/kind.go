package upload

// Kind is the closed set of entity types an image can be attached to.
type Kind int

const (
	KindProfile Kind = iota
	KindClinic
	KindDoctor
	KindGeneral
)

func (k Kind) String() string {
	switch k {
	case KindProfile:
		return "profile"
	case KindClinic:
		return "clinic"
	case KindDoctor:
		return "doctor"
	case KindGeneral:
		return "general"
	}
	return "unknown"
}

// Limits is the immutable per-kind upload descriptor. Configs are read-only
// during request processing.
type Limits struct {
	// Folder under which assets of this kind live in the store
	Folder string
	// PublicIDPrefix prefixes the generated asset name
	PublicIDPrefix string
	// MaxSizeBytes upper bound for the uploaded file
	MaxSizeBytes int64
	// RequiresEntityID whether the request must carry an entity id
	RequiresEntityID bool
	// EntityIDField form field carrying the entity id
	EntityIDField string
	// Transform opaque transformation spec forwarded to the store
	Transform string
}

const megabyte = 1 << 20

// LimitsFor returns the descriptor for a kind. The switch is exhaustive
// over the Kind enum.
func LimitsFor(k Kind) Limits {
	switch k {
	case KindProfile:
		return Limits{
			Folder:         "profiles",
			PublicIDPrefix: "profile",
			MaxSizeBytes:   5 * megabyte,
			Transform:      "c_fill,w_400,h_400",
		}
	case KindClinic:
		return Limits{
			Folder:           "clinics",
			PublicIDPrefix:   "clinic",
			MaxSizeBytes:     50 * megabyte,
			RequiresEntityID: true,
			EntityIDField:    "clinicId",
			Transform:        "c_limit,w_1920",
		}
	case KindDoctor:
		return Limits{
			Folder:           "doctors",
			PublicIDPrefix:   "doctor",
			MaxSizeBytes:     5 * megabyte,
			RequiresEntityID: true,
			EntityIDField:    "doctorId",
			Transform:        "c_fill,w_600,h_600",
		}
	case KindGeneral:
		return Limits{
			Folder:         "general",
			PublicIDPrefix: "img",
			MaxSizeBytes:   10 * megabyte,
		}
	}
	return Limits{}
}

// allowedTypes is the fixed set of accepted image MIME types for every kind.
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}
