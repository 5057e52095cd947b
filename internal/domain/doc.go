// Package domain defines the shared types and interfaces of the rebuild
// pipeline: phases, signing profiles, adb devices, and the contracts the
// tool wrappers and services implement.
package domain
