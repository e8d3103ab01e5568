// Package integrity reports on the outputs of the synchronization pipeline.
//
// # Checks
//
//   - Exports: every configured format has a file in the export directory. Size and
//     modification time are reported for present files.
//   - Storage: the bucket exists and holds one object per export file under the prefix.
//     With ?fix=true a missing bucket is created.
//   - Database: the reconciled_slots table exists. Its row count is reported.
//
// Checks against a disabled sink report an error entry instead of failing the whole
// report on /integrity.
package integrity
