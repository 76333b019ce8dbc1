package model

// EventType identifies a message on the websocket wire
type EventType string

// Inbound events, sent by clients
const (
	EventCreateRoom   EventType = "createRoom"
	EventJoinRoom     EventType = "joinRoom"
	EventSetSecret    EventType = "setSecretNumber"
	EventMakeGuess    EventType = "makeGuess"
	EventPlayAgain    EventType = "playAgain"
	EventRejoinRoom   EventType = "rejoinRoom"
	EventLeaveRoom    EventType = "leaveRoom"
	EventGetRoomStats EventType = "getRoomStats"
)

// Outbound events, sent by the server
const (
	EventRoomCreated        EventType = "roomCreated"
	EventRoomJoined         EventType = "roomJoined"
	EventPlayerJoined       EventType = "playerJoined"
	EventRoomUpdate         EventType = "roomUpdate"
	EventGameStart          EventType = "gameStart"
	EventSecretNumberSet    EventType = "secretNumberSet"
	EventOpponentReady      EventType = "opponentReady"
	EventGuessResult        EventType = "guessResult"
	EventOpponentGuess      EventType = "opponentGuess"
	EventGameWon            EventType = "gameWon"
	EventNewRoundStarted    EventType = "newRoundStarted"
	EventRoomRejoined       EventType = "roomRejoined"
	EventPlayerReconnected  EventType = "playerReconnected"
	EventPlayerDisconnected EventType = "playerDisconnected"
	EventRoomStats          EventType = "roomStats"
	EventError              EventType = "error"
)

// RoomCreatedPayload confirms room creation to the creator
type RoomCreatedPayload struct {
	RoomCode   RoomCode `json:"roomCode"`
	PlayerName string   `json:"playerName"`
}

// RoomJoinedPayload confirms a join to the joining player
type RoomJoinedPayload struct {
	RoomCode   RoomCode `json:"roomCode"`
	PlayerName string   `json:"playerName"`
}

// PlayerJoinedPayload tells existing members someone arrived
type PlayerJoinedPayload struct {
	PlayerName string `json:"playerName"`
}

// RoomUpdatePayload is the room-wide membership snapshot
type RoomUpdatePayload struct {
	Players   []PlayerSummary `json:"players"`
	GameState RoomState       `json:"gameState"`
}

// GameStartPayload is sent individually: YourSecret is the recipient's own
// secret and is never the opponent's
type GameStartPayload struct {
	Message    string          `json:"message"`
	Players    []PlayerSummary `json:"players"`
	YourSecret string          `json:"yourSecret"`
	YourTurn   bool            `json:"yourTurn"`
}

// SecretNumberSetPayload acknowledges a committed secret
type SecretNumberSetPayload struct {
	Message string `json:"message"`
}

// OpponentReadyPayload nudges the player who has not committed yet
type OpponentReadyPayload struct {
	Message string `json:"message"`
}

// GuessResultPayload goes privately to the guesser
type GuessResultPayload struct {
	Guess       string      `json:"guess"`
	Result      GuessResult `json:"result"`
	GuessNumber int         `json:"guessNumber"`
}

// OpponentGuessPayload goes to the other player; YourTurn flags the handoff
type OpponentGuessPayload struct {
	PlayerName  string      `json:"playerName"`
	Guess       string      `json:"guess"`
	Result      GuessResult `json:"result"`
	GuessNumber int         `json:"guessNumber"`
	YourTurn    bool        `json:"yourTurn"`
}

// GameWonPayload is broadcast on a win; both secrets are revealed
type GameWonPayload struct {
	Winner       string            `json:"winner"`
	Secrets      map[string]string `json:"secrets"` // display name -> secret
	TotalGuesses int               `json:"totalGuesses"`
}

// NewRoundStartedPayload is broadcast on a rematch; scores carry over
type NewRoundStartedPayload struct {
	Message   string          `json:"message"`
	GameState RoomState       `json:"gameState"`
	Players   []PlayerSummary `json:"players"`
	Scores    map[string]int  `json:"scores"` // display name -> score
}

// RoomRejoinedPayload is the full snapshot returned to a reconnecting player
type RoomRejoinedPayload struct {
	RoomCode   RoomCode        `json:"roomCode"`
	GameState  RoomState       `json:"gameState"`
	Players    []PlayerSummary `json:"players"`
	Scores     map[string]int  `json:"scores"`
	YourSecret string          `json:"yourSecret"`
	YourTurn   bool            `json:"yourTurn"`
	IsCreator  bool            `json:"isCreator"`
}

// PlayerReconnectedPayload tells remaining members a player came back
type PlayerReconnectedPayload struct {
	PlayerName string `json:"playerName"`
}

// PlayerDisconnectedPayload tells remaining members a player went away.
// CanContinue is true when the record is retained for a possible rejoin.
type PlayerDisconnectedPayload struct {
	PlayerName  string `json:"playerName"`
	Message     string `json:"message"`
	CanContinue bool   `json:"canContinue"`
}

// ErrorPayload carries a user-facing error to the originating connection only
type ErrorPayload struct {
	Message string `json:"message"`
}
