// Package keystore resolves the keystore used for signing.
//
// Resolution order: an explicit path, the Android SDK debug keystore under
// ~/.android, then a generated debug keystore in the OS temp directory.
// Generation shells out to keytool and happens at most once; an already
// generated keystore is reused on later runs.
package keystore
