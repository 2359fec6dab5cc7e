package constants

import "time"

var WordLimits = struct {
	MinLength int
	MaxLength int
}{
	MinLength: 2,  // 최소 2자
	MaxLength: 10, // 최대 10자
}

var GenerationConfig = struct {
	GeminiModel     string
	OpenAIModel     string
	Timeout         time.Duration
	MaxOutputTokens int
}{
	GeminiModel:     "gemini-2.5-flash",
	OpenAIModel:     "gpt-4.1-mini",
	Timeout:         60 * time.Second,
	MaxOutputTokens: 1024,
}

var ServerConfig = struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}{
	ReadTimeout:     10 * time.Second,
	WriteTimeout:    90 * time.Second, // 생성 호출이 응답 시간을 지배함
	IdleTimeout:     120 * time.Second,
	ShutdownTimeout: 10 * time.Second,
}

var InputLimits = struct {
	MaxFormValueLength int
}{
	MaxFormValueLength: 200,
}
