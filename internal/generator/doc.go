// Package generator provides the file-writing layer behind the wren CLI:
// validated write operations, conflict resolution, diffing, template
// rendering, and transactional multi-file commits.
//
// # Operations
//
// Rendered configs become Operations that are validated before anything
// touches disk, then executed:
//
//	ops := []generator.Operation{
//	    &generator.WriteFileOp{Path: "build/cmock.yml", Content: text, Mode: 0644},
//	}
//	err := generator.Execute(ctx, ops, generator.ExecuteOptions{DryRun: dryRun})
//
// # Transactions
//
// Use a transaction when several config files describe one build and must
// land together:
//
//	tx := generator.NewTransaction()
//	tx.AddFile("build/cmock.yml", cmockText, 0644)
//	tx.AddFile("build/gcovr.cfg", gcovrText, 0644)
//	if err := tx.Commit(); err != nil {
//	    // any partially written files are removed
//	    return err
//	}
package generator
