// Package analyser decides which WebDriver binary version a project needs
// and which version is installed.
//
// A [Project] combines the platform code of the host, the driver
// configuration and three collaborators: a [BrowserDetector] for the
// installed browser, a [VersionPoller] for the installed driver binary and a
// [Fetcher] for remote "latest release" lookups.
//
// The required version is negotiated in tiers:
//
//  1. driver.preferences.version, when set
//  2. the version map entry for the browser's major version
//  3. the first non-empty answer from driver.requests.version, only when
//     tier 2 produced a guess
//  4. the first entry of the version map
//
// Whatever the tiers produce must pass [version.Validate].
package analyser
