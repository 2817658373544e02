// Package ruby reads Bundler Gemfiles.
//
// Each `gem` declaration yields one record; the first version constraint,
// if any, is reported as written. Gem licenses live on RubyGems, which is
// never contacted, so every record carries the [LicenseHint] placeholder.
package ruby

// LicenseHint is the placeholder license for Ruby gems.
const LicenseHint = "Check RubyGems"
