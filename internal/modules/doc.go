// Package modules groups the application's feature modules.
//
//   - content: owns the CMS client and the optional fallback-file watcher.
//   - site: mounts the landing and menu pages.
package modules
