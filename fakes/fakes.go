package fakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o ./fake_ratelimiter.go ../ratelimiter Limiter
//counterfeiter:generate -o ./fake_submission_db.go ../db SubmissionDB
//counterfeiter:generate -o ./fake_transport.go ../notification Transport
//counterfeiter:generate -o ./fake_submitter.go ../contactserver Submitter
//counterfeiter:generate -o ./fake_dispatcher.go ../contactserver Dispatcher
