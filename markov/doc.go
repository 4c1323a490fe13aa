// Package markov generates text from an n-gram Markov chain.
//
// A Chain maps every prefix of n consecutive words to the ordered list of
// words that followed it in the source text. The source is padded with n
// NonWord sentinels so that generation can start from the all-NonWord prefix.
// Suffixes are kept with repetition, so a word that followed a prefix three
// times is three times as likely to be drawn.
//
// Generation is deterministic for a given seed (WithSeed, default DefaultSeed)
// or *rand.Rand (WithRand). It stops early when the current prefix was never
// followed by anything, i.e. at the end of the source text.
//
// Errors:
//
//   - ErrBadOrder       prefix length n < 1
//   - ErrNegativeCount  negative number of words requested
package markov
