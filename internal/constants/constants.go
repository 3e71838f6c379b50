package constants

// Environment variable keys
const (
	EnvConfigPath = "CRAZYFUN_CONFIG"
	EnvDBPath     = "CRAZYFUN_DB"
	EnvAddr       = "CRAZYFUN_ADDR"
	EnvTelemetry  = "CRAZYFUN_TELEMETRY"
	EnvHealthURL  = "CRAZYFUN_HEALTH_URL"
)

// Defaults used when neither the config file nor the environment set a value.
const (
	DefaultConfigPath    = "./crazyfun_config.json"
	DefaultDBPath        = "./data/crazyfun.db"
	DefaultServerAddress = ":8080"
	DefaultOpponentCount = 3
	MaxOpponentCount     = 10
	DefaultHealthURL     = "http://127.0.0.1:8080/api/version"
)

// Trainer profile limits
const (
	MinUsernameLength = 2
	MaxUsernameLength = 15
)

// Avatars a trainer may pick. The first one is the default.
var TrainerAvatars = []string{"😎", "🤠", "🥷", "🧙", "👽", "🤖", "🦸", "🧛", "🐱", "🐶", "🦊", "🐻"}

// Routes used by the backend router
const (
	RouteAPIPrefix         = "/api"
	RouteEntities          = "/entities"
	RouteTypeChart         = "/type-chart"
	RouteFusionPreview     = "/fusions/preview"
	RouteFusionDiscover    = "/fusions/discover"
	RouteFusionCodex       = "/fusions/codex"
	RouteTrainers          = "/trainers"
	RouteTrainerByID       = "/trainers/:trainerID"
	RouteTrainerCollection = "/trainers/:trainerID/collection"
	RouteCollectionEntry   = "/trainers/:trainerID/collection/:fusionKey"
	RouteArenaOpponents    = "/arena/opponents"
	RouteBattles           = "/battles"
	RouteBattleTurn        = "/battles/turn"
	RouteBattleOpponent    = "/battles/opponent-turn"
	RouteBattleFinish      = "/battles/finish"
	RouteVersion           = "/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest        = "Invalid request"
	ErrUnknownEntity         = "Unknown entity"
	ErrSelfFusion            = "An entity cannot be fused with itself"
	ErrFailedDiscoverFusion  = "Failed to record fusion"
	ErrFailedFetchCodex      = "Failed to fetch codex"
	ErrTrainerNotFound       = "Trainer not found"
	ErrInvalidUsername       = "Username must be between 2 and 15 characters"
	ErrInvalidAvatar         = "Unknown avatar"
	ErrFailedCreateTrainer   = "Failed to create trainer"
	ErrFailedFetchTrainer    = "Failed to fetch trainer"
	ErrFailedDeleteTrainer   = "Failed to delete trainer"
	ErrFailedFetchCollection = "Failed to fetch collection"
	ErrFailedSaveCollection  = "Failed to save fusion"
	ErrFusionNotInCollection = "Fusion not in collection"
	ErrFailedRemoveFusion    = "Failed to remove fusion"
	ErrInvalidOpponentCount  = "Invalid opponent count"
	ErrBattleNotActive       = "Battle is not in progress"
	ErrNotYourTurn           = "It is not your turn"
	ErrUnknownMove           = "Move does not belong to the attacking fusion"
	ErrBattleInProgress      = "Battle has not finished yet"
	ErrFailedFinishBattle    = "Failed to record battle result"
)

// Logging field names
const (
	LogFieldTrainerID = "trainer_id"
	LogFieldFusionKey = "fusion_key"
	LogFieldEntityA   = "entity_a"
	LogFieldEntityB   = "entity_b"
	LogFieldTurn      = "turn"
	LogFieldStatus    = "status"
	LogFieldXP        = "xp"
	LogFieldLevel     = "level"
	LogFieldAddr      = "addr"
	LogFieldPath      = "path"
	LogFieldCount     = "count"
)
