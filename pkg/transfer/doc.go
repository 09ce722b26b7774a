/*
Package transfer applies a move, copy or simulated transfer to each pair of a
batch.

	+-------------+     +-------------+     +-------------+
	|   listing   | --> |   pairing   | --> |  transfer   |
	|   (files)   |     |   (pairs)   |     | (Executor)  |
	+-------------+     +-------------+     +------+------+
	                                               |
	                                        +------+------+
	                                        |  Reporter   |
	                                        | (pkg/log)   |
	                                        +-------------+

🔄 Flow per pair:

	Pending -> Attempted -> Succeeded | Failed

⚡ Rules:
- One Mode for the whole batch, picked before the first pair
- A failed pair is reported once at error level and the batch moves on
- No retry, no rollback, no concurrency
- Simulate never touches the filesystem and reports with a [dry-run] marker
- Successful pairs reach the Reporter only when Verbose is set; otherwise
  they go to the debug log

🔍 Example:

	exec, err := transfer.NewExecutor(transfer.SelectOptions(copy, dryRun, verbose), reporter)
	summary := exec.Execute(ctx, pairing.Generate(files, dest, prefix))
*/
package transfer
